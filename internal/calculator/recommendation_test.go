package calculator

import (
	"testing"

	"grpvtracker/internal/domain"
	"grpvtracker/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func defaultRecommendationConfig() RecommendationConfig {
	cfg := util.DefaultScoringConfig()
	return RecommendationConfig{
		BuyThreshold:    cfg.BuyThreshold,
		SellThreshold:   cfg.SellThreshold,
		UpsideFactorMin: cfg.UpsideFactorMin,
		UpsideFactorMax: cfg.UpsideFactorMax,
		DownsideFloor:   cfg.DownsideFloor,
		DownsideCeiling: cfg.DownsideCeiling,
	}
}

func Test_Recommend(t *testing.T) {
	price := decimal.NewFromInt(100)
	cfg := defaultRecommendationConfig()

	t.Run("threshold boundaries", func(t *testing.T) {
		tests := []struct {
			score float64
			want  domain.Recommendation
		}{
			{score: 70, want: domain.Recommendation_Buy},
			{score: 69.999, want: domain.Recommendation_Hold},
			{score: 40, want: domain.Recommendation_Hold},
			{score: 39.999, want: domain.Recommendation_Sell},
			{score: 100, want: domain.Recommendation_Buy},
			{score: 0, want: domain.Recommendation_Sell},
		}
		for _, tc := range tests {
			got := Recommend(tc.score, nil, price, cfg)
			require.Equal(t, tc.want, got.Recommendation, "score %f", tc.score)
		}
	})

	t.Run("buy sets target above current price", func(t *testing.T) {
		got := Recommend(80, nil, price, cfg)
		require.Equal(t, domain.Recommendation_Buy, got.Recommendation)

		target, _ := got.TargetPrice.Float64()
		require.InDelta(t, 110, target, 1e-9)
	})

	t.Run("upside is capped", func(t *testing.T) {
		wide := cfg
		wide.BuyThreshold = 10
		got := Recommend(100, nil, price, wide)

		target, _ := got.TargetPrice.Float64()
		require.InDelta(t, 150, target, 1e-9)
	})

	t.Run("hold and sell keep target at current price", func(t *testing.T) {
		for _, score := range []float64{60, 20} {
			got := Recommend(score, nil, price, cfg)
			require.True(t, got.TargetPrice.Equal(price), "score %f", score)
		}
	})

	t.Run("stop loss tightens with a safe risk score", func(t *testing.T) {
		scores := map[domain.Category]domain.CategoryScore{
			domain.Category_Risk: sufficientScore(domain.Category_Risk, 90),
		}
		got := Recommend(64, scores, price, cfg)

		// downside = 0.05 + 0.20 * (100-90)/100
		stop, _ := got.StopLossPrice.Float64()
		require.InDelta(t, 93, stop, 1e-9)
	})

	t.Run("missing risk category reads as neutral", func(t *testing.T) {
		got := Recommend(64, nil, price, cfg)

		// downside = 0.05 + 0.20 * 0.5
		stop, _ := got.StopLossPrice.Float64()
		require.InDelta(t, 85, stop, 1e-9)
	})

	t.Run("reason cites the dominant category", func(t *testing.T) {
		scores := map[domain.Category]domain.CategoryScore{
			domain.Category_Growth:        sufficientScore(domain.Category_Growth, 70),
			domain.Category_Risk:          sufficientScore(domain.Category_Risk, 90),
			domain.Category_Profitability: sufficientScore(domain.Category_Profitability, 50),
			domain.Category_Valuation:     sufficientScore(domain.Category_Valuation, 40),
		}
		got := Recommend(64, scores, price, cfg)

		require.Equal(t, domain.Recommendation_Hold, got.Recommendation)
		require.Equal(t, "hold: overall score 64.0; driven by strength in risk (90.0/100)", got.Reason)
	})

	t.Run("reason cites a weakness when the dominant category is low", func(t *testing.T) {
		scores := map[domain.Category]domain.CategoryScore{
			domain.Category_Growth:    sufficientScore(domain.Category_Growth, 55),
			domain.Category_Valuation: sufficientScore(domain.Category_Valuation, 10),
		}
		got := Recommend(32.5, scores, price, cfg)

		require.Equal(t, domain.Recommendation_Sell, got.Recommendation)
		require.Equal(t, "sell: overall score 32.5; driven by weakness in valuation (10.0/100)", got.Reason)
	})

	t.Run("identical inputs produce identical outputs", func(t *testing.T) {
		scores := map[domain.Category]domain.CategoryScore{
			domain.Category_Risk: sufficientScore(domain.Category_Risk, 72.5),
		}
		first := Recommend(64, scores, price, cfg)
		second := Recommend(64, scores, price, cfg)
		require.Equal(t, first, second)
	})
}

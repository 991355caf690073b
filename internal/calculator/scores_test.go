package calculator

import (
	"testing"

	"grpvtracker/internal/catalog"
	"grpvtracker/internal/domain"
	"grpvtracker/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ScoreFactors(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	weights := util.DefaultScoringConfig().CategoryWeights

	// one factor per category, chosen so normalization lands on round scores:
	// growth 70, risk 90, profitability 50, valuation 40
	snapshot := []domain.FactorInput{
		{FactorID: "revenue_growth", RawValue: util.FloatPointer(0.22)},
		{FactorID: "volatility", RawValue: util.FloatPointer(0.17)},
		{FactorID: "roe", RawValue: util.FloatPointer(0.20)},
		{FactorID: "pe_ratio", RawValue: util.FloatPointer(38)},
	}

	t.Run("full pipeline over a sparse snapshot", func(t *testing.T) {
		got, err := ScoreFactors(cat, snapshot, weights)
		require.NoError(t, err)

		require.InDelta(t, 70, *got.CategoryScores[domain.Category_Growth].Score, 1e-9)
		require.InDelta(t, 90, *got.CategoryScores[domain.Category_Risk].Score, 1e-9)
		require.InDelta(t, 50, *got.CategoryScores[domain.Category_Profitability].Score, 1e-9)
		require.InDelta(t, 40, *got.CategoryScores[domain.Category_Valuation].Score, 1e-9)
		require.InDelta(t, 64, got.OverallScore, 1e-9)

		for _, category := range domain.Categories() {
			require.True(t, got.CategoryScores[category].DataSufficient)
		}
		require.Equal(t, []string{"revenue_growth"}, got.CategoryScores[domain.Category_Growth].ContributingFactorIDs)
		require.Equal(t, []string{"volatility"}, got.CategoryScores[domain.Category_Risk].ContributingFactorIDs)
	})

	t.Run("scoring to recommendation holds the worked example", func(t *testing.T) {
		got, err := ScoreFactors(cat, snapshot, weights)
		require.NoError(t, err)

		price := decimal.NewFromInt(100)
		rec := Recommend(got.OverallScore, got.CategoryScores, price, defaultRecommendationConfig())

		require.Equal(t, domain.Recommendation_Hold, rec.Recommendation)
		require.True(t, rec.TargetPrice.Equal(price))

		stop, _ := rec.StopLossPrice.Float64()
		require.InDelta(t, 93, stop, 1e-9)
	})

	t.Run("rerun is bit for bit identical", func(t *testing.T) {
		first, err := ScoreFactors(cat, snapshot, weights)
		require.NoError(t, err)
		second, err := ScoreFactors(cat, snapshot, weights)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("score sets differ across reruns (-first +second):\n%s", diff)
		}
	})

	t.Run("nil raw values are treated as absent", func(t *testing.T) {
		withNil := append([]domain.FactorInput{}, snapshot...)
		withNil = append(withNil, domain.FactorInput{FactorID: "eps_growth", RawValue: nil})

		first, err := ScoreFactors(cat, snapshot, weights)
		require.NoError(t, err)
		second, err := ScoreFactors(cat, withNil, weights)
		require.NoError(t, err)

		require.Equal(t, first.OverallScore, second.OverallScore)
	})

	t.Run("unknown factor id is rejected", func(t *testing.T) {
		_, err := ScoreFactors(cat, []domain.FactorInput{
			{FactorID: "share_price_squared", RawValue: util.FloatPointer(1)},
		}, weights)
		require.Error(t, err)
		require.True(t, domain.IsKind(err, domain.ErrorKind_Validation))
	})

	t.Run("empty snapshot has no sufficient category", func(t *testing.T) {
		_, err := ScoreFactors(cat, []domain.FactorInput{}, weights)
		require.Error(t, err)
		require.True(t, domain.IsKind(err, domain.ErrorKind_InsufficientData))
	})
}

package calculator

import (
	"fmt"
	"math"
	"strings"

	"grpvtracker/internal/domain"

	"github.com/shopspring/decimal"
)

type RecommendationConfig struct {
	BuyThreshold    float64
	SellThreshold   float64
	UpsideFactorMin float64
	UpsideFactorMax float64
	DownsideFloor   float64
	DownsideCeiling float64
}

type RecommendationResult struct {
	Recommendation domain.Recommendation
	Reason         string
	TargetPrice    decimal.Decimal
	StopLossPrice  decimal.Decimal
}

// Recommend maps an overall score onto a discrete action plus target and
// stop-loss prices. Stateless and total: same inputs, same outputs.
//
// Boundary rule: score >= buy threshold is Buy, score < sell threshold is
// Sell, everything between holds.
func Recommend(
	overallScore float64,
	categoryScores map[domain.Category]domain.CategoryScore,
	currentPrice decimal.Decimal,
	cfg RecommendationConfig,
) RecommendationResult {
	var rec domain.Recommendation
	switch {
	case overallScore >= cfg.BuyThreshold:
		rec = domain.Recommendation_Buy
	case overallScore < cfg.SellThreshold:
		rec = domain.Recommendation_Sell
	default:
		rec = domain.Recommendation_Hold
	}

	upside := 0.0
	if rec == domain.Recommendation_Buy {
		upside = clamp((overallScore-cfg.BuyThreshold)/100, cfg.UpsideFactorMin, cfg.UpsideFactorMax)
	}
	targetPrice := currentPrice.Mul(decimal.NewFromFloat(1 + upside))

	// a missing risk category reads as neutral safety
	riskScore := 50.0
	if cs, ok := categoryScores[domain.Category_Risk]; ok && cs.DataSufficient && cs.Score != nil {
		riskScore = *cs.Score
	}
	downside := downsideFactor(100-riskScore, cfg)
	stopLossPrice := currentPrice.Mul(decimal.NewFromFloat(1 - downside))

	return RecommendationResult{
		Recommendation: rec,
		Reason:         reason(rec, overallScore, categoryScores),
		TargetPrice:    targetPrice,
		StopLossPrice:  stopLossPrice,
	}
}

// downsideFactor widens the stop-loss distance as the risk-safety deficit
// (100 - risk score) grows, linearly between the configured floor and
// ceiling.
func downsideFactor(riskDeficit float64, cfg RecommendationConfig) float64 {
	return clamp(
		cfg.DownsideFloor+(cfg.DownsideCeiling-cfg.DownsideFloor)*riskDeficit/100,
		cfg.DownsideFloor,
		cfg.DownsideCeiling,
	)
}

// reason cites the dominant category - the one whose score deviates most
// from neutral 50. Purely descriptive.
func reason(rec domain.Recommendation, overallScore float64, categoryScores map[domain.Category]domain.CategoryScore) string {
	dominant := ""
	dominantScore := 0.0
	maxDeviation := -1.0
	for _, category := range domain.Categories() {
		cs, ok := categoryScores[category]
		if !ok || !cs.DataSufficient || cs.Score == nil {
			continue
		}
		deviation := math.Abs(*cs.Score - 50)
		if deviation > maxDeviation {
			maxDeviation = deviation
			dominant = strings.ToLower(string(category))
			dominantScore = *cs.Score
		}
	}

	if dominant == "" {
		return fmt.Sprintf("%s: overall score %.1f", strings.ToLower(string(rec)), overallScore)
	}

	direction := "strength"
	if dominantScore < 50 {
		direction = "weakness"
	}
	return fmt.Sprintf(
		"%s: overall score %.1f; driven by %s in %s (%.1f/100)",
		strings.ToLower(string(rec)), overallScore, direction, dominant, dominantScore,
	)
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

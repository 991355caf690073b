package calculator

import (
	"grpvtracker/internal/domain"
)

// CompositeScore blends the category scores into one overall 0-100 score.
// Categories without sufficient data drop out and the remaining weights are
// renormalized, same policy as within a category. All four category scores
// are uniformly higher-is-better (risk scores higher = safer), which is what
// makes a plain weighted average meaningful here.
func CompositeScore(
	categoryScores map[domain.Category]domain.CategoryScore,
	categoryWeights map[domain.Category]float64,
) (float64, error) {
	totalWeight := 0.0
	for _, category := range domain.Categories() {
		cs, ok := categoryScores[category]
		if !ok || !cs.DataSufficient || cs.Score == nil {
			continue
		}
		totalWeight += categoryWeights[category]
	}

	if totalWeight == 0 {
		return 0, domain.NewError(domain.ErrorKind_InsufficientData, "no category has sufficient data")
	}

	overall := 0.0
	for _, category := range domain.Categories() {
		cs, ok := categoryScores[category]
		if !ok || !cs.DataSufficient || cs.Score == nil {
			continue
		}
		overall += *cs.Score * (categoryWeights[category] / totalWeight)
	}

	return overall, nil
}

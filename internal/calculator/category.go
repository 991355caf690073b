package calculator

import (
	"sort"

	"grpvtracker/internal/domain"
)

// FactorValue pairs a catalog spec with the raw value supplied for it. A nil
// Raw means the factor was not supplied this run.
type FactorValue struct {
	Spec domain.FactorSpec
	Raw  *float64
}

// AggregateCategory combines the supplied factors of one category into a
// single 0-100 score. Only present factors participate; their weights are
// renormalized over the present subset. Summation runs in ascending factor
// id order so results are bit-reproducible.
func AggregateCategory(category domain.Category, values []FactorValue) (domain.CategoryScore, error) {
	sorted := make([]FactorValue, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Spec.FactorID < sorted[j].Spec.FactorID
	})

	totalWeight := 0.0
	for _, v := range sorted {
		if v.Raw == nil {
			continue
		}
		totalWeight += v.Spec.DefaultWeight
	}

	if totalWeight == 0 {
		return domain.CategoryScore{
			Category:              category,
			Score:                 nil,
			ContributingFactorIDs: []string{},
			DataSufficient:        false,
		}, nil
	}

	score := 0.0
	contributing := []string{}
	for _, v := range sorted {
		if v.Raw == nil || v.Spec.DefaultWeight == 0 {
			continue
		}
		normalized, err := Normalize(v.Spec, *v.Raw)
		if err != nil {
			return domain.CategoryScore{}, err
		}
		score += normalized * (v.Spec.DefaultWeight / totalWeight)
		contributing = append(contributing, v.Spec.FactorID)
	}

	return domain.CategoryScore{
		Category:              category,
		Score:                 &score,
		ContributingFactorIDs: contributing,
		DataSufficient:        true,
	}, nil
}

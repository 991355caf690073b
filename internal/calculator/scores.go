package calculator

import (
	"grpvtracker/internal/catalog"
	"grpvtracker/internal/domain"
)

type ScoreSet struct {
	CategoryScores map[domain.Category]domain.CategoryScore
	OverallScore   float64
}

// ScoreFactors runs the full scoring pipeline over one snapshot of raw
// inputs: per-category aggregation over the catalog's factors, then the
// weighted composite. Factors absent from the snapshot stay absent - they
// are never defaulted.
func ScoreFactors(
	cat *catalog.Catalog,
	inputs []domain.FactorInput,
	categoryWeights map[domain.Category]float64,
) (*ScoreSet, error) {
	if err := cat.ValidateInputs(inputs); err != nil {
		return nil, err
	}

	rawByID := map[string]*float64{}
	for _, in := range inputs {
		if in.RawValue == nil {
			continue
		}
		rawByID[in.FactorID] = in.RawValue
	}

	categoryScores := map[domain.Category]domain.CategoryScore{}
	for _, category := range domain.Categories() {
		values := []FactorValue{}
		for _, spec := range cat.CategoryFactors(category) {
			values = append(values, FactorValue{
				Spec: spec,
				Raw:  rawByID[spec.FactorID],
			})
		}
		score, err := AggregateCategory(category, values)
		if err != nil {
			return nil, err
		}
		categoryScores[category] = score
	}

	overall, err := CompositeScore(categoryScores, categoryWeights)
	if err != nil {
		return nil, err
	}

	return &ScoreSet{
		CategoryScores: categoryScores,
		OverallScore:   overall,
	}, nil
}

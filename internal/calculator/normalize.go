package calculator

import (
	"grpvtracker/internal/domain"
)

// Normalize maps one raw factor value onto the 0-100 scale described by its
// catalog spec: linear between min and max, clamped, flipped when lower raw
// values are better. A spec with min == max has no usable range and scores
// neutral.
func Normalize(spec domain.FactorSpec, raw float64) (float64, error) {
	if spec.MinValue > spec.MaxValue {
		return 0, domain.NewError(
			domain.ErrorKind_Validation,
			"factor %q has inverted range [%f, %f]",
			spec.FactorID, spec.MinValue, spec.MaxValue,
		)
	}
	if spec.MinValue == spec.MaxValue {
		return 50, nil
	}

	pct := (raw - spec.MinValue) / (spec.MaxValue - spec.MinValue)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	score := pct * 100
	if spec.Polarity == domain.Polarity_LowerIsBetter {
		score = 100 - score
	}

	return score, nil
}

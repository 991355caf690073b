package domain

type Category string

const (
	Category_Growth        Category = "GROWTH"
	Category_Risk          Category = "RISK"
	Category_Profitability Category = "PROFITABILITY"
	Category_Valuation     Category = "VALUATION"
)

// Categories lists the four GRPV dimensions in their canonical order.
func Categories() []Category {
	return []Category{
		Category_Growth,
		Category_Risk,
		Category_Profitability,
		Category_Valuation,
	}
}

type Polarity string

const (
	// higher raw values normalize toward 100
	Polarity_HigherIsBetter Polarity = "HIGHER_IS_BETTER"
	// lower raw values normalize toward 100
	Polarity_LowerIsBetter Polarity = "LOWER_IS_BETTER"
)

// FactorSpec is one entry of the versioned factor catalog. The catalog is
// loaded once at startup and is immutable afterwards.
type FactorSpec struct {
	Category      Category
	FactorID      string
	DisplayName   string
	MinValue      float64
	MaxValue      float64
	Polarity      Polarity
	DefaultWeight float64
}

// FactorInput is one raw metric supplied for a calculation. A nil RawValue
// means the metric was not supplied; it is excluded from scoring, never
// defaulted to zero.
type FactorInput struct {
	FactorID string   `json:"factorId"`
	RawValue *float64 `json:"rawValue"`
}

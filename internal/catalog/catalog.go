package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"grpvtracker/internal/domain"

	"github.com/gocarina/gocsv"
)

// Version identifies the factor schema baked into this build. Bump it when
// factors.csv changes so stored snapshots can be traced to the schema that
// produced them.
const Version = "2025.1"

//go:embed factors.csv
var defaultCatalogCSV []byte

type factorRow struct {
	Category      string  `csv:"category"`
	FactorID      string  `csv:"factor_id"`
	DisplayName   string  `csv:"display_name"`
	MinValue      float64 `csv:"min_value"`
	MaxValue      float64 `csv:"max_value"`
	Polarity      string  `csv:"polarity"`
	DefaultWeight float64 `csv:"default_weight"`
}

// Catalog is the finite schema of known factors. Runtime inputs may only
// reference factors listed here; anything else is rejected up front instead
// of silently scoring garbage.
type Catalog struct {
	specs      map[string]domain.FactorSpec
	byCategory map[domain.Category][]domain.FactorSpec
}

// Load parses and validates the embedded factor schema. A malformed catalog
// is a build defect, so any failure here is a validation error meant to stop
// process startup.
func Load() (*Catalog, error) {
	return parse(defaultCatalogCSV)
}

func parse(data []byte) (*Catalog, error) {
	rows := []factorRow{}
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, domain.WrapError(domain.ErrorKind_Validation, err, "failed to parse factor catalog")
	}
	if len(rows) == 0 {
		return nil, domain.NewError(domain.ErrorKind_Validation, "factor catalog is empty")
	}

	validCategories := map[domain.Category]bool{}
	for _, c := range domain.Categories() {
		validCategories[c] = true
	}

	c := &Catalog{
		specs:      map[string]domain.FactorSpec{},
		byCategory: map[domain.Category][]domain.FactorSpec{},
	}
	for _, row := range rows {
		spec, err := specFromRow(row, validCategories)
		if err != nil {
			return nil, err
		}
		if _, ok := c.specs[spec.FactorID]; ok {
			return nil, domain.NewError(domain.ErrorKind_Validation, "duplicate factor id %q in catalog", spec.FactorID)
		}
		c.specs[spec.FactorID] = spec
		c.byCategory[spec.Category] = append(c.byCategory[spec.Category], spec)
	}

	// fixed summation order downstream depends on this
	for cat := range c.byCategory {
		sort.Slice(c.byCategory[cat], func(i, j int) bool {
			return c.byCategory[cat][i].FactorID < c.byCategory[cat][j].FactorID
		})
	}

	return c, nil
}

func specFromRow(row factorRow, validCategories map[domain.Category]bool) (domain.FactorSpec, error) {
	spec := domain.FactorSpec{
		Category:      domain.Category(row.Category),
		FactorID:      row.FactorID,
		DisplayName:   row.DisplayName,
		MinValue:      row.MinValue,
		MaxValue:      row.MaxValue,
		Polarity:      domain.Polarity(row.Polarity),
		DefaultWeight: row.DefaultWeight,
	}
	if spec.FactorID == "" {
		return spec, domain.NewError(domain.ErrorKind_Validation, "catalog row missing factor id")
	}
	if !validCategories[spec.Category] {
		return spec, domain.NewError(domain.ErrorKind_Validation, "factor %q has unknown category %q", spec.FactorID, row.Category)
	}
	if spec.Polarity != domain.Polarity_HigherIsBetter && spec.Polarity != domain.Polarity_LowerIsBetter {
		return spec, domain.NewError(domain.ErrorKind_Validation, "factor %q has unknown polarity %q", spec.FactorID, row.Polarity)
	}
	if spec.MinValue >= spec.MaxValue {
		return spec, domain.NewError(domain.ErrorKind_Validation, "factor %q has min %f >= max %f", spec.FactorID, spec.MinValue, spec.MaxValue)
	}
	if spec.DefaultWeight <= 0 {
		return spec, domain.NewError(domain.ErrorKind_Validation, "factor %q has non-positive weight %f", spec.FactorID, spec.DefaultWeight)
	}
	return spec, nil
}

// Get looks up one factor spec by id.
func (c *Catalog) Get(factorID string) (domain.FactorSpec, bool) {
	spec, ok := c.specs[factorID]
	return spec, ok
}

// CategoryFactors returns the specs for one category, sorted ascending by
// factor id.
func (c *Catalog) CategoryFactors(category domain.Category) []domain.FactorSpec {
	return c.byCategory[category]
}

// ValidateInputs rejects inputs referencing factors the catalog does not
// know about.
func (c *Catalog) ValidateInputs(inputs []domain.FactorInput) error {
	for _, in := range inputs {
		if _, ok := c.specs[in.FactorID]; !ok {
			return domain.NewError(domain.ErrorKind_Validation, "unknown factor id %q", in.FactorID)
		}
	}
	return nil
}

func (c *Catalog) Size() int {
	return len(c.specs)
}

func (c *Catalog) String() string {
	return fmt.Sprintf("factor catalog %s (%d factors)", Version, len(c.specs))
}

package catalog

import (
	"sort"
	"testing"

	"grpvtracker/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	t.Run("every category has factors", func(t *testing.T) {
		total := 0
		for _, category := range domain.Categories() {
			specs := c.CategoryFactors(category)
			require.NotEmpty(t, specs, "category %s", category)
			total += len(specs)
		}
		require.Equal(t, c.Size(), total)
	})

	t.Run("category factors are sorted by id", func(t *testing.T) {
		for _, category := range domain.Categories() {
			specs := c.CategoryFactors(category)
			sorted := sort.SliceIsSorted(specs, func(i, j int) bool {
				return specs[i].FactorID < specs[j].FactorID
			})
			require.True(t, sorted, "category %s", category)
		}
	})

	t.Run("known factor resolves", func(t *testing.T) {
		spec, ok := c.Get("volatility")
		require.True(t, ok)
		require.Equal(t, domain.Category_Risk, spec.Category)
		require.Equal(t, domain.Polarity_LowerIsBetter, spec.Polarity)
		require.Less(t, spec.MinValue, spec.MaxValue)
		require.Greater(t, spec.DefaultWeight, 0.0)
	})

	t.Run("unknown factor does not resolve", func(t *testing.T) {
		_, ok := c.Get("unlisted_factor")
		require.False(t, ok)
	})
}

func Test_ValidateInputs(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	require.NoError(t, c.ValidateInputs([]domain.FactorInput{
		{FactorID: "roe"},
		{FactorID: "pe_ratio"},
	}))

	err = c.ValidateInputs([]domain.FactorInput{{FactorID: "made_up"}})
	require.Error(t, err)
	require.True(t, domain.IsKind(err, domain.ErrorKind_Validation))
}

func Test_parse(t *testing.T) {
	header := "category,factor_id,display_name,min_value,max_value,polarity,default_weight\n"

	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "empty catalog",
			csv:  header,
		},
		{
			name: "unknown category",
			csv:  header + "MOMENTUM,rsi,RSI,0,100,HIGHER_IS_BETTER,1.0\n",
		},
		{
			name: "unknown polarity",
			csv:  header + "GROWTH,revenue_growth,Revenue Growth,0,1,SIDEWAYS,1.0\n",
		},
		{
			name: "min not below max",
			csv:  header + "GROWTH,revenue_growth,Revenue Growth,1,1,HIGHER_IS_BETTER,1.0\n",
		},
		{
			name: "non-positive weight",
			csv:  header + "GROWTH,revenue_growth,Revenue Growth,0,1,HIGHER_IS_BETTER,0\n",
		},
		{
			name: "duplicate factor id",
			csv: header +
				"GROWTH,revenue_growth,Revenue Growth,0,1,HIGHER_IS_BETTER,0.5\n" +
				"RISK,revenue_growth,Revenue Growth,0,1,HIGHER_IS_BETTER,0.5\n",
		},
		{
			name: "missing factor id",
			csv:  header + "GROWTH,,Revenue Growth,0,1,HIGHER_IS_BETTER,1.0\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse([]byte(tc.csv))
			require.Error(t, err)
			require.True(t, domain.IsKind(err, domain.ErrorKind_Validation))
		})
	}

	t.Run("valid rows load", func(t *testing.T) {
		c, err := parse([]byte(header +
			"GROWTH,revenue_growth,Revenue Growth,0,1,HIGHER_IS_BETTER,0.6\n" +
			"RISK,beta,Beta,0,2.5,LOWER_IS_BETTER,0.4\n"))
		require.NoError(t, err)
		require.Equal(t, 2, c.Size())
	})
}

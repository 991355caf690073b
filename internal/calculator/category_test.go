package calculator

import (
	"testing"

	"grpvtracker/internal/domain"
	"grpvtracker/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func growthSpec(factorID string, weight float64) domain.FactorSpec {
	return domain.FactorSpec{
		Category:      domain.Category_Growth,
		FactorID:      factorID,
		MinValue:      0,
		MaxValue:      100,
		Polarity:      domain.Polarity_HigherIsBetter,
		DefaultWeight: weight,
	}
}

func Test_AggregateCategory(t *testing.T) {
	t.Run("weights renormalize over the present subset", func(t *testing.T) {
		values := []FactorValue{
			{Spec: growthSpec("a_factor", 0.40), Raw: util.FloatPointer(100)},
			{Spec: growthSpec("b_factor", 0.40), Raw: util.FloatPointer(0)},
			{Spec: growthSpec("c_factor", 0.20), Raw: nil},
		}

		got, err := AggregateCategory(domain.Category_Growth, values)
		require.NoError(t, err)

		require.True(t, got.DataSufficient)
		require.NotNil(t, got.Score)
		require.InDelta(t, 50, *got.Score, 1e-9)
		require.Equal(t, []string{"a_factor", "b_factor"}, got.ContributingFactorIDs)
	})

	t.Run("absent factor and removed factor score identically", func(t *testing.T) {
		withAbsent := []FactorValue{
			{Spec: growthSpec("a_factor", 0.40), Raw: util.FloatPointer(80)},
			{Spec: growthSpec("b_factor", 0.60), Raw: nil},
		}
		withoutAbsent := []FactorValue{
			{Spec: growthSpec("a_factor", 0.40), Raw: util.FloatPointer(80)},
		}

		first, err := AggregateCategory(domain.Category_Growth, withAbsent)
		require.NoError(t, err)
		second, err := AggregateCategory(domain.Category_Growth, withoutAbsent)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("category scores differ (-absent +removed):\n%s", diff)
		}
	})

	t.Run("removing a zero weight factor does not change the score", func(t *testing.T) {
		withZero := []FactorValue{
			{Spec: growthSpec("a_factor", 0.40), Raw: util.FloatPointer(80)},
			{Spec: growthSpec("b_factor", 0.60), Raw: util.FloatPointer(20)},
			{Spec: growthSpec("c_factor", 0), Raw: util.FloatPointer(100)},
		}
		withoutZero := []FactorValue{
			{Spec: growthSpec("a_factor", 0.40), Raw: util.FloatPointer(80)},
			{Spec: growthSpec("b_factor", 0.60), Raw: util.FloatPointer(20)},
		}

		first, err := AggregateCategory(domain.Category_Growth, withZero)
		require.NoError(t, err)
		second, err := AggregateCategory(domain.Category_Growth, withoutZero)
		require.NoError(t, err)

		if diff := cmp.Diff(second, first); diff != "" {
			t.Errorf("category scores differ (-removed +zero):\n%s", diff)
		}
		require.NotContains(t, first.ContributingFactorIDs, "c_factor")
	})

	t.Run("input order does not change the result", func(t *testing.T) {
		forward := []FactorValue{
			{Spec: growthSpec("a_factor", 0.37), Raw: util.FloatPointer(13.7)},
			{Spec: growthSpec("b_factor", 0.29), Raw: util.FloatPointer(88.1)},
			{Spec: growthSpec("c_factor", 0.34), Raw: util.FloatPointer(41.9)},
		}
		reversed := []FactorValue{forward[2], forward[1], forward[0]}

		first, err := AggregateCategory(domain.Category_Growth, forward)
		require.NoError(t, err)
		second, err := AggregateCategory(domain.Category_Growth, reversed)
		require.NoError(t, err)

		require.Equal(t, *first.Score, *second.Score)
		require.Equal(t, first.ContributingFactorIDs, second.ContributingFactorIDs)
	})

	t.Run("no present factors means insufficient data", func(t *testing.T) {
		values := []FactorValue{
			{Spec: growthSpec("a_factor", 0.40), Raw: nil},
			{Spec: growthSpec("b_factor", 0.60), Raw: nil},
		}

		got, err := AggregateCategory(domain.Category_Growth, values)
		require.NoError(t, err)

		want := domain.CategoryScore{
			Category:              domain.Category_Growth,
			Score:                 nil,
			ContributingFactorIDs: []string{},
			DataSufficient:        false,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("category score mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty category means insufficient data", func(t *testing.T) {
		got, err := AggregateCategory(domain.Category_Valuation, []FactorValue{})
		require.NoError(t, err)
		require.False(t, got.DataSufficient)
		require.Nil(t, got.Score)
	})
}

package api

import (
	"testing"
	"time"

	"grpvtracker/internal/domain"
	"grpvtracker/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_toAnalysisResponse(t *testing.T) {
	rec := domain.Recommendation_Hold
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	analysis := domain.GRPVAnalysis{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Symbol:      "AAPL",
		CompanyName: "Apple Inc.",
		FactorSnapshot: []domain.FactorInput{
			{FactorID: "roe", RawValue: util.FloatPointer(0.2)},
		},
		CategoryScores: map[domain.Category]domain.CategoryScore{
			domain.Category_Profitability: {
				Category:              domain.Category_Profitability,
				Score:                 util.FloatPointer(50),
				ContributingFactorIDs: []string{"roe"},
				DataSufficient:        true,
			},
		},
		OverallScore:         util.FloatPointer(64),
		Recommendation:       &rec,
		RecommendationReason: "hold: overall score 64.0",
		CurrentPrice:         decimal.NewFromInt(100),
		TargetPrice:          decimal.NewFromInt(100),
		StopLossPrice:        decimal.NewFromInt(93),
		AnalysisDate:         updated,
		CreatedAt:            created,
		UpdatedAt:            updated,
		Version:              3,
	}

	got := toAnalysisResponse(analysis)

	require.Equal(t, analysis.ID.String(), got.ID)
	require.Equal(t, "AAPL", got.Symbol)
	require.Equal(t, "Apple Inc.", got.CompanyName)
	require.NotNil(t, got.Recommendation)
	require.Equal(t, "HOLD", *got.Recommendation)
	require.Equal(t, "100", got.CurrentPrice)
	require.Equal(t, "93", got.StopLossPrice)
	require.Equal(t, created, got.CreatedAt)
	require.Equal(t, updated, got.UpdatedAt)
	require.Equal(t, int32(3), got.Version)
	require.False(t, got.Stale)

	wantScores := map[string]categoryScoreResponse{
		"PROFITABILITY": {
			Category:              "PROFITABILITY",
			Score:                 util.FloatPointer(50),
			ContributingFactorIds: []string{"roe"},
			DataSufficient:        true,
		},
	}
	if diff := cmp.Diff(wantScores, got.CategoryScores); diff != "" {
		t.Errorf("category scores mismatch (-want +got):\n%s", diff)
	}
}

func Test_toAnalysisResponse_sparseRecord(t *testing.T) {
	got := toAnalysisResponse(domain.GRPVAnalysis{
		ID:     uuid.New(),
		Symbol: "ZZZZ",
	})

	require.Nil(t, got.Recommendation)
	require.Nil(t, got.OverallScore)
	require.Empty(t, got.CategoryScores)
}

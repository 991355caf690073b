package api

import (
	"time"

	"grpvtracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type calculateAnalysisRequest struct {
	Symbol string `json:"symbol"`
}

type categoryScoreResponse struct {
	Category              string   `json:"category"`
	Score                 *float64 `json:"score"`
	ContributingFactorIds []string `json:"contributingFactorIds"`
	DataSufficient        bool     `json:"dataSufficient"`
}

type analysisResponse struct {
	ID                   string                           `json:"id"`
	Symbol               string                           `json:"symbol"`
	CompanyName          string                           `json:"companyName"`
	FactorSnapshot       []domain.FactorInput             `json:"factorSnapshot"`
	CategoryScores       map[string]categoryScoreResponse `json:"categoryScores"`
	OverallScore         *float64                         `json:"overallScore"`
	Recommendation       *string                          `json:"recommendation"`
	RecommendationReason string                           `json:"recommendationReason"`
	CurrentPrice         string                           `json:"currentPrice"`
	TargetPrice          string                           `json:"targetPrice"`
	StopLossPrice        string                           `json:"stopLossPrice"`
	AnalysisDate         time.Time                        `json:"analysisDate"`
	CreatedAt            time.Time                        `json:"createdAt"`
	UpdatedAt            time.Time                        `json:"updatedAt"`
	Version              int32                            `json:"version"`
	Stale                bool                             `json:"stale"`
}

func toAnalysisResponse(a domain.GRPVAnalysis) analysisResponse {
	categoryScores := map[string]categoryScoreResponse{}
	for category, cs := range a.CategoryScores {
		categoryScores[string(category)] = categoryScoreResponse{
			Category:              string(cs.Category),
			Score:                 cs.Score,
			ContributingFactorIds: cs.ContributingFactorIDs,
			DataSufficient:        cs.DataSufficient,
		}
	}

	var recommendation *string
	if a.Recommendation != nil {
		r := string(*a.Recommendation)
		recommendation = &r
	}

	return analysisResponse{
		ID:                   a.ID.String(),
		Symbol:               a.Symbol,
		CompanyName:          a.CompanyName,
		FactorSnapshot:       a.FactorSnapshot,
		CategoryScores:       categoryScores,
		OverallScore:         a.OverallScore,
		Recommendation:       recommendation,
		RecommendationReason: a.RecommendationReason,
		CurrentPrice:         a.CurrentPrice.String(),
		TargetPrice:          a.TargetPrice.String(),
		StopLossPrice:        a.StopLossPrice.String(),
		AnalysisDate:         a.AnalysisDate,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
		Version:              a.Version,
		Stale:                a.Stale,
	}
}

func (m ApiHandler) calculateAnalysis(c *gin.Context) {
	var requestBody calculateAnalysisRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(domain.WrapError(domain.ErrorKind_Validation, err, "invalid request body"), c)
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	analysis, err := m.AnalysisService.Calculate(c.Request.Context(), userID, requestBody.Symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, toAnalysisResponse(*analysis))
}

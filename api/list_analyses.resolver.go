package api

import (
	"github.com/gin-gonic/gin"
)

type listAnalysesResponse struct {
	Analyses []analysisResponse `json:"analyses"`
}

func (m ApiHandler) listAnalyses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	analyses, err := m.AnalysisService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := listAnalysesResponse{
		Analyses: []analysisResponse{},
	}
	for _, a := range analyses {
		out.Analyses = append(out.Analyses, toAnalysisResponse(a))
	}

	c.JSON(200, out)
}

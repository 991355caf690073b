package api

import (
	"grpvtracker/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) deleteAnalysis(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	analysisID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJson(domain.WrapError(domain.ErrorKind_Validation, err, "invalid analysis id"), c)
		return
	}

	err = m.AnalysisService.Delete(c.Request.Context(), userID, analysisID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"deleted": analysisID.String()})
}

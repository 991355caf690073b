package api

import (
	"github.com/gin-gonic/gin"
)

type symbolSearchResultResponse struct {
	Symbol      string `json:"symbol"`
	CompanyName string `json:"companyName"`
}

type searchSymbolsResponse struct {
	Results []symbolSearchResultResponse `json:"results"`
}

func (m ApiHandler) searchSymbols(c *gin.Context) {
	results, err := m.SymbolSearchService.Search(c.Query("q"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := searchSymbolsResponse{
		Results: []symbolSearchResultResponse{},
	}
	for _, r := range results {
		out.Results = append(out.Results, symbolSearchResultResponse{
			Symbol:      r.Symbol,
			CompanyName: r.CompanyName,
		})
	}

	c.JSON(200, out)
}

package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type portfolioChartRequest struct {
	portfolioScope
	Start string `json:"start"`
	End   string `json:"end"`
}

func (m ApiHandler) portfolioChart(c *gin.Context) {
	var requestBody portfolioChartRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	userID, portfolioName, err := requestBody.normalized()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	// default to the trailing year
	end := time.Now().UTC()
	start := end.AddDate(-1, 0, 0)
	if requestBody.Start != "" {
		start, err = time.Parse("2006-01-02", requestBody.Start)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid start %q: %w", requestBody.Start, err), c, 400)
			return
		}
	}
	if requestBody.End != "" {
		end, err = time.Parse("2006-01-02", requestBody.End)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid end %q: %w", requestBody.End, err), c, 400)
			return
		}
	}

	chart, err := m.PerformanceService.GetPortfolioChart(c, userID, portfolioName, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, chart)
}

package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type performanceSinceInceptionRequest struct {
	portfolioScope
}

func (m ApiHandler) performanceSinceInception(c *gin.Context) {
	var requestBody performanceSinceInceptionRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	userID, portfolioName, err := requestBody.normalized()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	chart, err := m.PerformanceService.GetPerformanceSinceInception(c, userID, portfolioName)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, chart)
}

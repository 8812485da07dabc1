package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type dashboardRequest struct {
	portfolioScope
}

func (m ApiHandler) dashboard(c *gin.Context) {
	var requestBody dashboardRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	userID, portfolioName, err := requestBody.normalized()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	dashboard, err := m.DashboardService.GetDashboard(c, userID, portfolioName)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, dashboard)
}

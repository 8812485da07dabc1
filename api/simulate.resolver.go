package api

import (
	"fmt"
	"time"

	"stocktracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type simulateRequest struct {
	Symbols           []string        `json:"symbols"`
	StartDate         string          `json:"startDate"`
	EndDate           string          `json:"endDate"`
	InitialInvestment decimal.Decimal `json:"initialInvestment"`
}

func (m ApiHandler) simulate(c *gin.Context) {
	var requestBody simulateRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	start, err := time.Parse("2006-01-02", requestBody.StartDate)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid startDate %q: %w", requestBody.StartDate, err), c, 400)
		return
	}
	end, err := time.Parse("2006-01-02", requestBody.EndDate)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid endDate %q: %w", requestBody.EndDate, err), c, 400)
		return
	}

	result, err := m.SimulationService.Run(c, service.SimulationInput{
		Symbols:           requestBody.Symbols,
		StartDate:         start,
		EndDate:           end,
		InitialInvestment: requestBody.InitialInvestment,
	})
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, result)
}

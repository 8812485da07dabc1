package api

import (
	"fmt"

	"stocktracker/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type updatePricesRequest struct {
	UserID        uuid.UUID `json:"userID"`
	PortfolioName string    `json:"portfolioName"`
	// Symbols overrides the held-symbol default when set.
	Symbols  []string `json:"symbols"`
	DaysBack int      `json:"daysBack"`
}

func (m ApiHandler) updatePrices(c *gin.Context) {
	var requestBody updatePricesRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	symbols := requestBody.Symbols
	if len(symbols) == 0 {
		if requestBody.UserID == uuid.Nil {
			returnErrorJsonCode(fmt.Errorf("either symbols or userID is required"), c, 400)
			return
		}
		portfolioName := requestBody.PortfolioName
		if portfolioName == "" {
			portfolioName = defaultPortfolioName
		}
		positions, err := m.PositionService.GetPositions(requestBody.UserID, portfolioName)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		symbols = domain.HeldSymbols(positions)
	}

	daysBack := requestBody.DaysBack
	if daysBack <= 0 {
		daysBack = 365
	}

	if err := m.PriceService.UpdatePrices(c, symbols, daysBack); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"message": "ok", "symbols": symbols})
}

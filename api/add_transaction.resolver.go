package api

import (
	"fmt"
	"time"

	"stocktracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type addTransactionRequest struct {
	UserID          uuid.UUID       `json:"userID"`
	PortfolioName   string          `json:"portfolioName"`
	Symbol          string          `json:"symbol"`
	TransactionType string          `json:"transactionType"`
	Quantity        decimal.Decimal `json:"quantity"`
	PricePerShare   decimal.Decimal `json:"pricePerShare"`
	TransactionDate string          `json:"transactionDate"`
	Notes           string          `json:"notes"`
}

type addTransactionResponse struct {
	TransactionID uuid.UUID `json:"transactionID"`
}

func (m ApiHandler) addTransaction(c *gin.Context) {
	var requestBody addTransactionRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	transactionDate, err := time.Parse("2006-01-02", requestBody.TransactionDate)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid transactionDate %q: %w", requestBody.TransactionDate, err), c, 400)
		return
	}

	portfolioName := requestBody.PortfolioName
	if portfolioName == "" {
		portfolioName = defaultPortfolioName
	}

	inserted, err := m.TransactionService.AddTransaction(c, service.AddTransactionInput{
		UserID:          requestBody.UserID,
		PortfolioName:   portfolioName,
		Symbol:          requestBody.Symbol,
		TransactionType: requestBody.TransactionType,
		Quantity:        requestBody.Quantity,
		PricePerShare:   requestBody.PricePerShare,
		TransactionDate: transactionDate,
		Notes:           requestBody.Notes,
	})
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, addTransactionResponse{TransactionID: inserted.TransactionID})
}

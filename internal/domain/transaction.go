package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "BUY"
	TransactionTypeSell TransactionType = "SELL"
)

// Transaction is one row of the append-only ledger. Corrections are
// recorded as new offsetting transactions, never edits.
type Transaction struct {
	TransactionID   uuid.UUID
	UserID          uuid.UUID
	PortfolioName   string
	Symbol          string
	TransactionType TransactionType
	Quantity        decimal.Decimal
	PricePerShare   decimal.Decimal
	TransactionDate time.Time
	Notes           string
}

func (t Transaction) TotalValue() decimal.Decimal {
	return t.Quantity.Mul(t.PricePerShare)
}

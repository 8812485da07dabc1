package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is the net holding in one symbol, derived from the ledger.
// It is recomputed from scratch on every read and never mutated in place.
type Position struct {
	Symbol       string
	Quantity     decimal.Decimal
	AvgCostBasis decimal.Decimal
	// TotalCost is the cost attributable to currently-held shares only.
	// Sells release cost proportionally to the fraction of shares sold.
	TotalCost decimal.Decimal
	// FirstPurchase is the date of the earliest BUY for this symbol.
	FirstPurchase time.Time
}

// MarketValue values the position at the given price.
func (p Position) MarketValue(price decimal.Decimal) decimal.Decimal {
	return p.Quantity.Mul(price)
}

func HeldSymbols(positions map[string]Position) []string {
	symbols := []string{}
	for symbol := range positions {
		symbols = append(symbols, symbol)
	}
	return symbols
}

// PortfolioSummary holds the headline numbers for one (user, portfolio) pair.
type PortfolioSummary struct {
	TotalInvested     decimal.Decimal `json:"totalInvested"`
	TotalReceived     decimal.Decimal `json:"totalReceived"`
	NetInvested       decimal.Decimal `json:"netInvested"`
	CompaniesCount    int             `json:"companiesCount"`
	TotalTransactions int             `json:"totalTransactions"`
}

// Dashboard is the aggregate payload backing the main portfolio view.
type Dashboard struct {
	Summary             PortfolioSummary `json:"summary"`
	Holdings            []Holding        `json:"holdings"`
	TotalMarketValue    decimal.Decimal  `json:"totalMarketValue"`
	RecentTransactions  []Transaction    `json:"recentTransactions"`
	AvailablePortfolios []string         `json:"availablePortfolios"`
}

// Holding is one row of the detailed holdings table. Current value and
// performance are nil when no price could be found anywhere, so the
// renderer can show "unavailable" instead of a misleading zero.
type Holding struct {
	Symbol         string           `json:"symbol"`
	Quantity       decimal.Decimal  `json:"quantity"`
	AvgCostBasis   decimal.Decimal  `json:"avgCostBasis"`
	TotalCost      decimal.Decimal  `json:"totalCost"`
	FirstPurchase  time.Time        `json:"firstPurchase"`
	CurrentPrice   *decimal.Decimal `json:"currentPrice,omitempty"`
	CurrentValue   *decimal.Decimal `json:"currentValue,omitempty"`
	GainLoss       *decimal.Decimal `json:"gainLoss,omitempty"`
	PerformancePct *float64         `json:"performancePct,omitempty"`
	WeightPct      float64          `json:"weightPct"`
	PriceSource    string           `json:"priceSource"`
}

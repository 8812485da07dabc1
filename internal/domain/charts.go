package domain

import "github.com/shopspring/decimal"

// PerformanceDataset is one symbol's percent-return line. Values are
// aligned to the chart's shared label axis; nil marks dates before the
// symbol's first observation.
type PerformanceDataset struct {
	Symbol string     `json:"symbol"`
	Values []*float64 `json:"values"`
}

// PerformanceChart is the performance-since-inception payload: one
// dataset per held symbol plus the investment-weighted portfolio average.
type PerformanceChart struct {
	Labels           []string             `json:"labels"`
	Datasets         []PerformanceDataset `json:"datasets"`
	PortfolioAverage []float64            `json:"portfolioAverage"`
}

// PortfolioChart is the market-value-over-time payload.
type PortfolioChart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// SectorAllocation is one slice of the allocation breakdown, ordered by
// value descending.
type SectorAllocation struct {
	Sector  string          `json:"sector"`
	Value   decimal.Decimal `json:"value"`
	Percent float64         `json:"percent"`
}

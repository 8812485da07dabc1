package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetPrice is one observed close price. Price history is sparse - not
// every symbol has an observation for every date.
type AssetPrice struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
}

// AlignedSeries is several sparse per-symbol price sequences merged onto
// one common ascending timeline. A nil value means the symbol had no
// observation at or before that date yet; nil is deliberately distinct
// from zero so downstream averages are not corrupted.
type AlignedSeries struct {
	Dates  []time.Time
	Values map[string][]*decimal.Decimal
}

func (s AlignedSeries) Len() int {
	return len(s.Dates)
}

// ValueAt returns the carried-forward price for symbol at index i, or
// false when no observation existed yet.
func (s AlignedSeries) ValueAt(symbol string, i int) (decimal.Decimal, bool) {
	values, ok := s.Values[symbol]
	if !ok || i < 0 || i >= len(values) || values[i] == nil {
		return decimal.Zero, false
	}
	return *values[i], true
}

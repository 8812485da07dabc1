package calculator

import (
	"stocktracker/internal/domain"

	"github.com/shopspring/decimal"
)

// PointPerformance is the percent return of the current price against
// the position's average cost basis. A zero basis yields 0 - a symbol
// with no recorded cost has no meaningful percentage.
func PointPerformance(position domain.Position, currentPrice decimal.Decimal) float64 {
	if position.AvgCostBasis.IsZero() {
		return 0
	}
	return currentPrice.Sub(position.AvgCostBasis).
		Div(position.AvgCostBasis).
		InexactFloat64() * 100
}

// SeriesSinceInception maps an aligned price timeline to the position's
// percent return per date. Entries are nil before the first purchase
// date and wherever the symbol has no carried-forward price yet; they
// are never zero-filled, so gaps stay visible to the weighted average.
func SeriesSinceInception(series domain.AlignedSeries, position domain.Position) []*float64 {
	out := make([]*float64, series.Len())
	if position.AvgCostBasis.IsZero() {
		return out
	}

	for i, date := range series.Dates {
		if date.Before(position.FirstPurchase) {
			continue
		}
		price, ok := series.ValueAt(position.Symbol, i)
		if !ok {
			continue
		}
		pct := price.Sub(position.AvgCostBasis).
			Div(position.AvgCostBasis).
			InexactFloat64() * 100
		out[i] = &pct
	}

	return out
}

// WeightedAverageSeries combines per-symbol percent series into one
// portfolio line, weighting each symbol by its invested amount (total
// cost). A symbol with no value at a date - typically not yet purchased
// - contributes to neither numerator nor denominator there, so early
// dates reflect only the symbols actually held. Dates where no symbol
// has data yield 0.
func WeightedAverageSeries(seriesBySymbol map[string][]*float64, weights map[string]decimal.Decimal, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		weightedSum := 0.0
		availableWeight := 0.0
		for symbol, values := range seriesBySymbol {
			if i >= len(values) || values[i] == nil {
				continue
			}
			weight := weights[symbol].InexactFloat64()
			weightedSum += *values[i] * weight
			availableWeight += weight
		}
		if availableWeight > 0 {
			out[i] = weightedSum / availableWeight
		}
	}
	return out
}

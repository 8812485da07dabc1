package calculator

import (
	"sort"

	"stocktracker/internal/domain"

	"github.com/shopspring/decimal"
)

// SectorOther buckets symbols missing from the injected sector map.
const SectorOther = "Other"

// Allocate buckets current market value by sector and normalizes to
// percentages. A position without a current price is valued at its
// total cost - an explicit degraded mode, not a silent zero. The result
// is sorted by value descending, ties broken by sector label so output
// is deterministic. A zero total yields an empty result.
func Allocate(
	positions map[string]domain.Position,
	currentPrices map[string]decimal.Decimal,
	sectorOf map[string]string,
) []domain.SectorAllocation {
	sectorValues := map[string]decimal.Decimal{}
	total := decimal.Zero

	for symbol, position := range positions {
		sector, ok := sectorOf[symbol]
		if !ok {
			sector = SectorOther
		}

		value := position.TotalCost
		if price, ok := currentPrices[symbol]; ok {
			value = position.MarketValue(price)
		}

		sectorValues[sector] = sectorValues[sector].Add(value)
		total = total.Add(value)
	}

	if !total.IsPositive() {
		return []domain.SectorAllocation{}
	}

	out := make([]domain.SectorAllocation, 0, len(sectorValues))
	for sector, value := range sectorValues {
		out = append(out, domain.SectorAllocation{
			Sector:  sector,
			Value:   value,
			Percent: value.Div(total).InexactFloat64() * 100,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Sector < out[j].Sector
	})

	return out
}

package calculator

import (
	"sort"
	"time"

	"stocktracker/internal/domain"

	"github.com/shopspring/decimal"
)

// AlignSeries merges sparse, independently-dated per-symbol price
// sequences onto one shared ascending timeline: the union of all
// observed dates within [start, end]. Each symbol's value at a date is
// its most recent in-range observation at or before that date
// (last-known-value carry-forward). Before a symbol's first observation
// the value is nil, never zero - a zero would corrupt downstream
// averages.
//
// Every value slice in the result has exactly len(Dates) entries. An
// empty union produces a zero-length series; callers decide what
// "insufficient data" means for them.
func AlignSeries(seriesBySymbol map[string][]domain.AssetPrice, start, end time.Time) domain.AlignedSeries {
	inRange := map[string][]domain.AssetPrice{}
	dateSet := map[time.Time]bool{}
	for symbol, series := range seriesBySymbol {
		kept := []domain.AssetPrice{}
		for _, p := range series {
			if p.Date.Before(start) || p.Date.After(end) {
				continue
			}
			kept = append(kept, p)
			dateSet[p.Date] = true
		}
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].Date.Before(kept[j].Date)
		})
		inRange[symbol] = kept
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	values := map[string][]*decimal.Decimal{}
	for symbol, series := range inRange {
		aligned := make([]*decimal.Decimal, 0, len(dates))
		var last *decimal.Decimal
		j := 0
		for _, d := range dates {
			for j < len(series) && !series[j].Date.After(d) {
				price := series[j].Price
				last = &price
				j++
			}
			aligned = append(aligned, last)
		}
		values[symbol] = aligned
	}

	return domain.AlignedSeries{
		Dates:  dates,
		Values: values,
	}
}

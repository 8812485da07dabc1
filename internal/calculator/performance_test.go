package calculator

import (
	"testing"

	"stocktracker/internal/domain"
	"stocktracker/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_PointPerformance(t *testing.T) {
	t.Run("percent return vs avg cost basis", func(t *testing.T) {
		position := domain.Position{
			Symbol:       "AAPL",
			AvgCostBasis: decimal.NewFromInt(100),
		}
		require.InDelta(t, 20.0, PointPerformance(position, decimal.NewFromInt(120)), 1e-9)
		require.InDelta(t, -50.0, PointPerformance(position, decimal.NewFromInt(50)), 1e-9)
	})

	t.Run("zero basis yields zero instead of dividing", func(t *testing.T) {
		position := domain.Position{Symbol: "X"}
		require.Equal(t, 0.0, PointPerformance(position, decimal.NewFromInt(500)))
	})
}

func Test_SeriesSinceInception(t *testing.T) {
	aligned := AlignSeries(map[string][]domain.AssetPrice{
		"AAPL": {
			price("AAPL", 100, 2024, 1, 1),
			price("AAPL", 110, 2024, 1, 2),
			price("AAPL", 120, 2024, 1, 3),
		},
	}, util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 3))

	t.Run("dates before first purchase stay nil", func(t *testing.T) {
		position := domain.Position{
			Symbol:        "AAPL",
			AvgCostBasis:  decimal.NewFromInt(100),
			FirstPurchase: util.NewDate(2024, 1, 2),
		}

		series := SeriesSinceInception(aligned, position)
		require.Len(t, series, 3)
		require.Nil(t, series[0])
		require.NotNil(t, series[1])
		require.InDelta(t, 10.0, *series[1], 1e-9)
		require.InDelta(t, 20.0, *series[2], 1e-9)
	})

	t.Run("zero basis yields all nil", func(t *testing.T) {
		series := SeriesSinceInception(aligned, domain.Position{Symbol: "AAPL"})
		for _, v := range series {
			require.Nil(t, v)
		}
	})
}

func Test_WeightedAverageSeries(t *testing.T) {
	t.Run("symbols without data are excluded from the average", func(t *testing.T) {
		ten, twenty := 10.0, 20.0
		seriesBySymbol := map[string][]*float64{
			// B purchased later: no data at index 0
			"A": {&ten, &ten},
			"B": {nil, &twenty},
		}
		weights := map[string]decimal.Decimal{
			"A": decimal.NewFromInt(1000),
			"B": decimal.NewFromInt(3000),
		}

		avg := WeightedAverageSeries(seriesBySymbol, weights, 2)
		require.Len(t, avg, 2)
		// index 0: only A contributes, so the average is A's return
		require.InDelta(t, 10.0, avg[0], 1e-9)
		// index 1: (10*1000 + 20*3000) / 4000
		require.InDelta(t, 17.5, avg[1], 1e-9)
	})

	t.Run("no data at a date yields zero", func(t *testing.T) {
		avg := WeightedAverageSeries(map[string][]*float64{
			"A": {nil},
		}, map[string]decimal.Decimal{"A": decimal.NewFromInt(100)}, 1)
		require.Equal(t, []float64{0}, avg)
	})
}

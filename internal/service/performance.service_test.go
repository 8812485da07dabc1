package service

import (
	"context"
	"testing"

	"stocktracker/internal/domain"
	"stocktracker/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_GetPerformanceSinceInception(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	positions := map[string]domain.Position{
		"AAPL": {
			Symbol:        "AAPL",
			Quantity:      decimal.NewFromInt(10),
			AvgCostBasis:  decimal.NewFromInt(10),
			TotalCost:     decimal.NewFromInt(100),
			FirstPurchase: util.NewDate(2024, 1, 2),
		},
	}
	history := map[string][]domain.AssetPrice{
		"AAPL": {
			{Symbol: "AAPL", Price: decimal.NewFromInt(10), Date: util.NewDate(2024, 1, 2)},
			{Symbol: "AAPL", Price: decimal.NewFromInt(11), Date: util.NewDate(2024, 1, 3)},
			{Symbol: "AAPL", Price: decimal.NewFromInt(12), Date: util.NewDate(2024, 1, 4)},
		},
	}

	h := NewPerformanceService(
		stubPositionService{positions: positions},
		stubPriceService{history: history},
	)

	t.Run("single holding matches its own return line", func(t *testing.T) {
		chart, err := h.GetPerformanceSinceInception(ctx, userID, "main")
		require.NoError(t, err)

		require.Equal(t, []string{"01/02/2024", "01/03/2024", "01/04/2024"}, chart.Labels)
		require.Len(t, chart.Datasets, 1)
		require.Equal(t, "AAPL", chart.Datasets[0].Symbol)

		values := chart.Datasets[0].Values
		require.Len(t, values, 3)
		require.InDelta(t, 0.0, *values[0], 1e-9)
		require.InDelta(t, 10.0, *values[1], 1e-9)
		require.InDelta(t, 20.0, *values[2], 1e-9)

		require.Len(t, chart.PortfolioAverage, 3)
		require.InDelta(t, 20.0, chart.PortfolioAverage[2], 1e-9)
	})

	t.Run("empty portfolio yields empty chart", func(t *testing.T) {
		h := NewPerformanceService(
			stubPositionService{positions: map[string]domain.Position{}},
			stubPriceService{},
		)
		chart, err := h.GetPerformanceSinceInception(ctx, userID, "main")
		require.NoError(t, err)
		require.Len(t, chart.Labels, 0)
		require.Len(t, chart.Datasets, 0)
	})
}

func Test_GetPortfolioChart(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	positions := map[string]domain.Position{
		"AAPL": {
			Symbol:        "AAPL",
			Quantity:      decimal.NewFromInt(10),
			TotalCost:     decimal.NewFromInt(100),
			FirstPurchase: util.NewDate(2024, 1, 2),
		},
	}
	history := map[string][]domain.AssetPrice{
		"AAPL": {
			{Symbol: "AAPL", Price: decimal.NewFromInt(10), Date: util.NewDate(2024, 1, 2)},
			{Symbol: "AAPL", Price: decimal.NewFromInt(11), Date: util.NewDate(2024, 1, 3)},
			{Symbol: "AAPL", Price: decimal.NewFromInt(12), Date: util.NewDate(2024, 1, 4)},
		},
	}

	h := NewPerformanceService(
		stubPositionService{positions: positions},
		stubPriceService{history: history},
	)

	t.Run("values carry position quantity", func(t *testing.T) {
		chart, err := h.GetPortfolioChart(ctx, userID, "main", util.NewDate(2024, 1, 1), util.NewDate(2024, 1, 31))
		require.NoError(t, err)
		require.Equal(t, []string{"01/02/2024", "01/03/2024", "01/04/2024"}, chart.Labels)
		require.Equal(t, []float64{100, 110, 120}, chart.Values)
	})
}

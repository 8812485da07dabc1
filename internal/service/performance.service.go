package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"stocktracker/internal/calculator"
	"stocktracker/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const chartLabelLayout = "01/02/2006"

type PerformanceService interface {
	// GetPerformanceSinceInception builds the percent-return chart for
	// every held symbol plus the investment-weighted portfolio average,
	// on a shared date axis starting at the earliest first purchase.
	GetPerformanceSinceInception(ctx context.Context, userID uuid.UUID, portfolioName string) (*domain.PerformanceChart, error)
	// GetPortfolioChart builds total market value over time using
	// carried-forward prices.
	GetPortfolioChart(ctx context.Context, userID uuid.UUID, portfolioName string, start, end time.Time) (*domain.PortfolioChart, error)
}

type performanceServiceHandler struct {
	PositionService PositionService
	PriceService    PriceService
}

func NewPerformanceService(positionService PositionService, priceService PriceService) PerformanceService {
	return performanceServiceHandler{
		PositionService: positionService,
		PriceService:    priceService,
	}
}

func (h performanceServiceHandler) GetPerformanceSinceInception(ctx context.Context, userID uuid.UUID, portfolioName string) (*domain.PerformanceChart, error) {
	positions, err := h.PositionService.GetPositions(userID, portfolioName)
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return &domain.PerformanceChart{
			Labels:           []string{},
			Datasets:         []domain.PerformanceDataset{},
			PortfolioAverage: []float64{},
		}, nil
	}

	start := inceptionDate(positions)
	end := time.Now().UTC()

	aligned, err := h.alignedPrices(positions, start, end)
	if err != nil {
		return nil, err
	}

	symbols := domain.HeldSymbols(positions)
	sort.Strings(symbols)

	datasets := make([]domain.PerformanceDataset, 0, len(symbols))
	seriesBySymbol := map[string][]*float64{}
	weights := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		values := calculator.SeriesSinceInception(aligned, positions[symbol])
		datasets = append(datasets, domain.PerformanceDataset{
			Symbol: symbol,
			Values: values,
		})
		seriesBySymbol[symbol] = values
		weights[symbol] = positions[symbol].TotalCost
	}

	return &domain.PerformanceChart{
		Labels:           chartLabels(aligned.Dates),
		Datasets:         datasets,
		PortfolioAverage: calculator.WeightedAverageSeries(seriesBySymbol, weights, aligned.Len()),
	}, nil
}

func (h performanceServiceHandler) GetPortfolioChart(ctx context.Context, userID uuid.UUID, portfolioName string, start, end time.Time) (*domain.PortfolioChart, error) {
	positions, err := h.PositionService.GetPositions(userID, portfolioName)
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return &domain.PortfolioChart{Labels: []string{}, Values: []float64{}}, nil
	}

	aligned, err := h.alignedPrices(positions, start, end)
	if err != nil {
		return nil, err
	}

	labels := []string{}
	values := []float64{}
	for i := 0; i < aligned.Len(); i++ {
		total := decimal.Zero
		observed := false
		for symbol, position := range positions {
			price, ok := aligned.ValueAt(symbol, i)
			if !ok {
				continue
			}
			observed = true
			total = total.Add(position.MarketValue(price))
		}
		// dates before every symbol's first observation carry no value
		if !observed {
			continue
		}
		labels = append(labels, aligned.Dates[i].Format(chartLabelLayout))
		values = append(values, total.InexactFloat64())
	}

	return &domain.PortfolioChart{Labels: labels, Values: values}, nil
}

func (h performanceServiceHandler) alignedPrices(positions map[string]domain.Position, start, end time.Time) (domain.AlignedSeries, error) {
	symbols := domain.HeldSymbols(positions)
	history, err := h.PriceService.GetPriceHistoryMany(symbols, start, end)
	if err != nil {
		return domain.AlignedSeries{}, fmt.Errorf("failed to load price history: %w", err)
	}
	return calculator.AlignSeries(history, start, end), nil
}

func inceptionDate(positions map[string]domain.Position) time.Time {
	var earliest time.Time
	for _, position := range positions {
		if earliest.IsZero() || position.FirstPurchase.Before(earliest) {
			earliest = position.FirstPurchase
		}
	}
	return earliest
}

func chartLabels(dates []time.Time) []string {
	labels := make([]string, 0, len(dates))
	for _, d := range dates {
		labels = append(labels, d.Format(chartLabelLayout))
	}
	return labels
}

package service

import (
	"context"
	"fmt"
	"time"

	"stocktracker/internal/calculator"
	"stocktracker/internal/domain"
	"stocktracker/internal/logger"

	"github.com/shopspring/decimal"
)

type SimulationInput struct {
	Symbols           []string
	StartDate         time.Time
	EndDate           time.Time
	InitialInvestment decimal.Decimal
}

type SimulationResult struct {
	Labels            []string  `json:"labels"`
	Values            []float64 `json:"values"`
	InitialInvestment float64   `json:"initialInvestment"`
	FinalValue        float64   `json:"finalValue"`
	TotalReturnPct    float64   `json:"totalReturnPct"`
	AnnualizedReturn  float64   `json:"annualizedReturn"`
	AnnualizedStdev   float64   `json:"annualizedStdev"`
}

type SimulationService interface {
	// Run simulates an equal-weight buy-and-hold portfolio: the initial
	// investment is split evenly across symbols, each bought at its
	// first stored price in range, then valued over the shared date
	// axis with carried-forward prices.
	Run(ctx context.Context, in SimulationInput) (*SimulationResult, error)
}

type simulationServiceHandler struct {
	PriceService PriceService
}

func NewSimulationService(priceService PriceService) SimulationService {
	return simulationServiceHandler{PriceService: priceService}
}

func (h simulationServiceHandler) Run(ctx context.Context, in SimulationInput) (*SimulationResult, error) {
	log := logger.FromContext(ctx)

	if len(in.Symbols) == 0 {
		return nil, fmt.Errorf("at least one symbol is required")
	}
	if !in.InitialInvestment.IsPositive() {
		return nil, fmt.Errorf("initial investment must be positive")
	}
	if !in.StartDate.Before(in.EndDate) {
		return nil, fmt.Errorf("start date must precede end date")
	}

	history, err := h.PriceService.GetPriceHistoryMany(in.Symbols, in.StartDate, in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load price history: %w", err)
	}

	aligned := calculator.AlignSeries(history, in.StartDate, in.EndDate)
	if aligned.Len() < 2 {
		return nil, fmt.Errorf("insufficient price history to simulate")
	}

	perSymbol := in.InitialInvestment.Div(decimal.NewFromInt(int64(len(in.Symbols))))
	quantities := map[string]decimal.Decimal{}
	for _, symbol := range in.Symbols {
		entryPrice, ok := firstObservedPrice(aligned, symbol)
		if !ok {
			log.Warnf("no prices for %s in simulation range, skipping", symbol)
			continue
		}
		quantities[symbol] = perSymbol.Div(entryPrice)
	}
	if len(quantities) == 0 {
		return nil, fmt.Errorf("no simulated symbols have stored prices in range")
	}

	labels := []string{}
	dates := []time.Time{}
	values := []float64{}
	for i := 0; i < aligned.Len(); i++ {
		total := decimal.Zero
		observed := false
		for symbol, quantity := range quantities {
			price, ok := aligned.ValueAt(symbol, i)
			if !ok {
				continue
			}
			observed = true
			total = total.Add(quantity.Mul(price))
		}
		if !observed {
			continue
		}
		labels = append(labels, aligned.Dates[i].Format(chartLabelLayout))
		dates = append(dates, aligned.Dates[i])
		values = append(values, total.InexactFloat64())
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("insufficient price history to simulate")
	}

	metrics, err := calculator.CalculateSeriesMetrics(values, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to compute simulation metrics: %w", err)
	}

	return &SimulationResult{
		Labels:            labels,
		Values:            values,
		InitialInvestment: in.InitialInvestment.InexactFloat64(),
		FinalValue:        values[len(values)-1],
		TotalReturnPct:    metrics.TotalReturnPct,
		AnnualizedReturn:  metrics.AnnualizedReturn,
		AnnualizedStdev:   metrics.AnnualizedStdev,
	}, nil
}

func firstObservedPrice(aligned domain.AlignedSeries, symbol string) (decimal.Decimal, bool) {
	for i := 0; i < aligned.Len(); i++ {
		if price, ok := aligned.ValueAt(symbol, i); ok {
			return price, true
		}
	}
	return decimal.Zero, false
}

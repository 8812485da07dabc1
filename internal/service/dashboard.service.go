package service

import (
	"context"
	"fmt"
	"sort"

	"stocktracker/internal/calculator"
	"stocktracker/internal/domain"
	"stocktracker/internal/repository"
	"stocktracker/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const recentTransactionsLimit = 10

type DashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID, portfolioName string) (*domain.Dashboard, error)
}

type dashboardServiceHandler struct {
	TransactionRepository repository.TransactionRepository
	PriceService          PriceService
}

func NewDashboardService(transactionRepository repository.TransactionRepository, priceService PriceService) DashboardService {
	return dashboardServiceHandler{
		TransactionRepository: transactionRepository,
		PriceService:          priceService,
	}
}

func (h dashboardServiceHandler) GetDashboard(ctx context.Context, userID uuid.UUID, portfolioName string) (*domain.Dashboard, error) {
	ledger, err := h.TransactionRepository.List(userID, portfolioName)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	positions := calculator.ComputePositions(ledger)
	summary := calculator.SummarizeLedger(ledger, positions)
	currentPrices := h.PriceService.GetCurrentPrices(ctx, domain.HeldSymbols(positions))

	holdings, totalMarketValue := buildHoldings(positions, currentPrices)

	recent, err := h.TransactionRepository.ListRecent(userID, portfolioName, recentTransactionsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	names, err := h.TransactionRepository.ListPortfolioNames(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}

	return &domain.Dashboard{
		Summary:             summary,
		Holdings:            holdings,
		TotalMarketValue:    totalMarketValue,
		RecentTransactions:  recent,
		AvailablePortfolios: names,
	}, nil
}

// buildHoldings values each position, falling back to total cost when
// no price exists so portfolio weights still sum to 100.
func buildHoldings(positions map[string]domain.Position, currentPrices map[string]CurrentPrice) ([]domain.Holding, decimal.Decimal) {
	totalValue := decimal.Zero
	holdings := make([]domain.Holding, 0, len(positions))

	for symbol, position := range positions {
		holding := domain.Holding{
			Symbol:        symbol,
			Quantity:      position.Quantity,
			AvgCostBasis:  position.AvgCostBasis,
			TotalCost:     position.TotalCost,
			FirstPurchase: position.FirstPurchase,
			PriceSource:   "unavailable",
		}

		weightValue := position.TotalCost
		if price, ok := currentPrices[symbol]; ok {
			value := position.MarketValue(price.Price)
			holding.CurrentPrice = util.DecimalPointer(price.Price)
			holding.CurrentValue = util.DecimalPointer(value)
			holding.GainLoss = util.DecimalPointer(value.Sub(position.TotalCost))
			holding.PerformancePct = util.FloatPointer(calculator.PointPerformance(position, price.Price))
			holding.PriceSource = price.Source
			weightValue = value
		}

		totalValue = totalValue.Add(weightValue)
		holdings = append(holdings, holding)
	}

	if totalValue.IsPositive() {
		for i := range holdings {
			weightValue := holdings[i].TotalCost
			if holdings[i].CurrentValue != nil {
				weightValue = *holdings[i].CurrentValue
			}
			holdings[i].WeightPct = weightValue.Div(totalValue).InexactFloat64() * 100
		}
	}

	sort.Slice(holdings, func(i, j int) bool {
		if holdings[i].WeightPct != holdings[j].WeightPct {
			return holdings[i].WeightPct > holdings[j].WeightPct
		}
		return holdings[i].Symbol < holdings[j].Symbol
	})

	return holdings, totalValue
}

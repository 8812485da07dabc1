package service

import (
	"context"

	"stocktracker/internal/calculator"
	"stocktracker/internal/data"
	"stocktracker/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AllocationService interface {
	GetSectorAllocation(ctx context.Context, userID uuid.UUID, portfolioName string) ([]domain.SectorAllocation, error)
}

type allocationServiceHandler struct {
	PositionService PositionService
	PriceService    PriceService
	Reference       *data.ReferenceData
}

func NewAllocationService(positionService PositionService, priceService PriceService, reference *data.ReferenceData) AllocationService {
	return allocationServiceHandler{
		PositionService: positionService,
		PriceService:    priceService,
		Reference:       reference,
	}
}

func (h allocationServiceHandler) GetSectorAllocation(ctx context.Context, userID uuid.UUID, portfolioName string) ([]domain.SectorAllocation, error) {
	positions, err := h.PositionService.GetPositions(userID, portfolioName)
	if err != nil {
		return nil, err
	}

	currentPrices := map[string]decimal.Decimal{}
	for symbol, price := range h.PriceService.GetCurrentPrices(ctx, domain.HeldSymbols(positions)) {
		currentPrices[symbol] = price.Price
	}

	return calculator.Allocate(positions, currentPrices, h.Reference.SectorBySymbol), nil
}

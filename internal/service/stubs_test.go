package service

import (
	"context"
	"time"

	"stocktracker/internal/domain"

	"github.com/google/uuid"
)

// stubPositionService serves fixed positions, bypassing the ledger.
type stubPositionService struct {
	positions map[string]domain.Position
	ledger    []domain.Transaction
	err       error
}

func (s stubPositionService) GetPositions(userID uuid.UUID, portfolioName string) (map[string]domain.Position, error) {
	return s.positions, s.err
}

func (s stubPositionService) GetLedger(userID uuid.UUID, portfolioName string) ([]domain.Transaction, error) {
	return s.ledger, s.err
}

// stubPriceService serves fixed quotes and history, bypassing providers
// and storage.
type stubPriceService struct {
	current map[string]CurrentPrice
	history map[string][]domain.AssetPrice
	err     error
}

func (s stubPriceService) GetCurrentPrice(ctx context.Context, symbol string) *CurrentPrice {
	if p, ok := s.current[symbol]; ok {
		return &p
	}
	return nil
}

func (s stubPriceService) GetCurrentPrices(ctx context.Context, symbols []string) map[string]CurrentPrice {
	out := map[string]CurrentPrice{}
	for _, symbol := range symbols {
		if p, ok := s.current[symbol]; ok {
			out[symbol] = p
		}
	}
	return out
}

func (s stubPriceService) GetPriceHistory(symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	return s.history[symbol], s.err
}

func (s stubPriceService) GetPriceHistoryMany(symbols []string, start, end time.Time) (map[string][]domain.AssetPrice, error) {
	return s.history, s.err
}

func (s stubPriceService) UpdatePrices(ctx context.Context, symbols []string, daysBack int) error {
	return s.err
}

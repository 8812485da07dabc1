package service

import (
	"fmt"

	"stocktracker/internal/calculator"
	"stocktracker/internal/domain"
	"stocktracker/internal/repository"

	"github.com/google/uuid"
)

// PositionService derives net open positions from the ledger. Positions
// are never stored; they are recomputed from the full transaction slice
// on every call so the ledger stays the single source of truth.
type PositionService interface {
	GetPositions(userID uuid.UUID, portfolioName string) (map[string]domain.Position, error)
	GetLedger(userID uuid.UUID, portfolioName string) ([]domain.Transaction, error)
}

type positionServiceHandler struct {
	TransactionRepository repository.TransactionRepository
}

func NewPositionService(transactionRepository repository.TransactionRepository) PositionService {
	return positionServiceHandler{
		TransactionRepository: transactionRepository,
	}
}

func (h positionServiceHandler) GetPositions(userID uuid.UUID, portfolioName string) (map[string]domain.Position, error) {
	ledger, err := h.GetLedger(userID, portfolioName)
	if err != nil {
		return nil, err
	}
	return calculator.ComputePositions(ledger), nil
}

func (h positionServiceHandler) GetLedger(userID uuid.UUID, portfolioName string) ([]domain.Transaction, error) {
	ledger, err := h.TransactionRepository.List(userID, portfolioName)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for %s: %w", portfolioName, err)
	}
	return ledger, nil
}

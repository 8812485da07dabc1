package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stocktracker/internal/calculator"
	"stocktracker/internal/db/models/postgres/public/model"
	"stocktracker/internal/repository"
	"stocktracker/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddTransactionInput struct {
	UserID          uuid.UUID
	PortfolioName   string
	Symbol          string
	TransactionType string
	Quantity        decimal.Decimal
	PricePerShare   decimal.Decimal
	TransactionDate time.Time
	Notes           string
}

type TransactionService interface {
	// AddTransaction validates and appends one ledger entry. Quantity
	// and price must be strictly positive; zero-quantity entries would
	// poison average cost math downstream.
	AddTransaction(ctx context.Context, in AddTransactionInput) (*model.Transaction, error)
}

type transactionServiceHandler struct {
	TransactionRepository repository.TransactionRepository
	// RejectOversells refuses sells larger than the held quantity at
	// the sell date. When false, oversells are recorded as-is and the
	// position calculator drops the symbol once net quantity goes
	// non-positive.
	RejectOversells bool
}

func NewTransactionService(transactionRepository repository.TransactionRepository, rejectOversells bool) TransactionService {
	return transactionServiceHandler{
		TransactionRepository: transactionRepository,
		RejectOversells:       rejectOversells,
	}
}

func (h transactionServiceHandler) AddTransaction(ctx context.Context, in AddTransactionInput) (*model.Transaction, error) {
	symbol := strings.ToUpper(strings.TrimSpace(in.Symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if strings.TrimSpace(in.PortfolioName) == "" {
		return nil, fmt.Errorf("portfolio name is required")
	}
	if in.UserID == uuid.Nil {
		return nil, fmt.Errorf("user id is required")
	}

	transactionType := model.TransactionType(strings.ToUpper(strings.TrimSpace(in.TransactionType)))
	if transactionType != model.TransactionType_Buy && transactionType != model.TransactionType_Sell {
		return nil, fmt.Errorf("invalid transaction type %q", in.TransactionType)
	}

	if !in.Quantity.IsPositive() {
		return nil, fmt.Errorf("quantity must be positive, got %s", in.Quantity)
	}
	if !in.PricePerShare.IsPositive() {
		return nil, fmt.Errorf("price per share must be positive, got %s", in.PricePerShare)
	}
	if in.TransactionDate.IsZero() {
		return nil, fmt.Errorf("transaction date is required")
	}

	if h.RejectOversells && transactionType == model.TransactionType_Sell {
		if err := h.checkOversell(in.UserID, in.PortfolioName, symbol, in.Quantity); err != nil {
			return nil, err
		}
	}

	var notes *string
	if in.Notes != "" {
		notes = util.StringPointer(in.Notes)
	}

	date := in.TransactionDate.UTC()
	return h.TransactionRepository.Add(nil, model.Transaction{
		UserID:          in.UserID,
		PortfolioName:   in.PortfolioName,
		Symbol:          symbol,
		TransactionType: transactionType,
		Quantity:        in.Quantity,
		PricePerShare:   in.PricePerShare,
		TransactionDate: util.NewDate(date.Year(), int(date.Month()), date.Day()),
		Notes:           notes,
	})
}

func (h transactionServiceHandler) checkOversell(userID uuid.UUID, portfolioName, symbol string, quantity decimal.Decimal) error {
	ledger, err := h.TransactionRepository.List(userID, portfolioName)
	if err != nil {
		return fmt.Errorf("failed to load ledger for oversell check: %w", err)
	}

	positions := calculator.ComputePositions(ledger)
	held := decimal.Zero
	if position, ok := positions[symbol]; ok {
		held = position.Quantity
	}

	if quantity.GreaterThan(held) {
		return fmt.Errorf("cannot sell %s shares of %s, only %s held", quantity, symbol, held)
	}

	return nil
}

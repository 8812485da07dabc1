package service

import (
	"context"
	"testing"
	"time"

	"stocktracker/internal/db/models/postgres/public/model"
	"stocktracker/internal/domain"
	mock_repository "stocktracker/internal/repository/mocks"
	"stocktracker/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validInput(userID uuid.UUID) AddTransactionInput {
	return AddTransactionInput{
		UserID:          userID,
		PortfolioName:   "main",
		Symbol:          "aapl",
		TransactionType: "buy",
		Quantity:        decimal.NewFromInt(10),
		PricePerShare:   decimal.NewFromInt(150),
		TransactionDate: util.NewDate(2024, 1, 2),
	}
}

func Test_AddTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("normalizes and inserts a valid buy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		h := NewTransactionService(transactionRepository, false)

		transactionRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(tx interface{}, m model.Transaction) (*model.Transaction, error) {
				require.Equal(t, "AAPL", m.Symbol)
				require.Equal(t, model.TransactionType_Buy, m.TransactionType)
				require.Nil(t, m.Notes)
				require.Equal(t, util.NewDate(2024, 1, 2), m.TransactionDate)
				return &m, nil
			})

		out, err := h.AddTransaction(ctx, validInput(userID))
		require.NoError(t, err)
		require.NotNil(t, out)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		h := NewTransactionService(transactionRepository, false)

		cases := []struct {
			name   string
			mutate func(*AddTransactionInput)
		}{
			{"zero quantity", func(in *AddTransactionInput) { in.Quantity = decimal.Zero }},
			{"negative quantity", func(in *AddTransactionInput) { in.Quantity = decimal.NewFromInt(-1) }},
			{"zero price", func(in *AddTransactionInput) { in.PricePerShare = decimal.Zero }},
			{"unknown type", func(in *AddTransactionInput) { in.TransactionType = "SHORT" }},
			{"blank symbol", func(in *AddTransactionInput) { in.Symbol = "  " }},
			{"blank portfolio", func(in *AddTransactionInput) { in.PortfolioName = "" }},
			{"nil user", func(in *AddTransactionInput) { in.UserID = uuid.Nil }},
			{"zero date", func(in *AddTransactionInput) { in.TransactionDate = time.Time{} }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := validInput(userID)
				tc.mutate(&in)
				_, err := h.AddTransaction(ctx, in)
				require.Error(t, err)
			})
		}
	})

	t.Run("oversell rejected when policy enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		h := NewTransactionService(transactionRepository, true)

		transactionRepository.EXPECT().List(userID, "main").Return([]domain.Transaction{{
			Symbol:          "AAPL",
			TransactionType: domain.TransactionTypeBuy,
			Quantity:        decimal.NewFromInt(5),
			PricePerShare:   decimal.NewFromInt(100),
			TransactionDate: util.NewDate(2023, 6, 1),
		}}, nil)

		in := validInput(userID)
		in.TransactionType = "SELL"
		in.Quantity = decimal.NewFromInt(10)

		_, err := h.AddTransaction(ctx, in)
		require.ErrorContains(t, err, "only 5 held")
	})

	t.Run("oversell recorded when policy disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		h := NewTransactionService(transactionRepository, false)

		transactionRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(tx interface{}, m model.Transaction) (*model.Transaction, error) {
				return &m, nil
			})

		in := validInput(userID)
		in.TransactionType = "SELL"
		in.Quantity = decimal.NewFromInt(10)

		_, err := h.AddTransaction(ctx, in)
		require.NoError(t, err)
	})
}

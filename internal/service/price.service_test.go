package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"stocktracker/internal/db/models/postgres/public/model"
	"stocktracker/internal/domain"
	mock_repository "stocktracker/internal/repository/mocks"
	"stocktracker/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeProvider struct {
	name    string
	quote   *domain.AssetPrice
	history []domain.AssetPrice
	err     error
}

func (f fakeProvider) Name() string {
	return f.name
}

func (f fakeProvider) GetQuote(ctx context.Context, symbol string) (*domain.AssetPrice, error) {
	return f.quote, f.err
}

func (f fakeProvider) GetDailyHistory(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	return f.history, f.err
}

func Test_GetCurrentPrice(t *testing.T) {
	ctx := context.Background()
	aaplQuote := &domain.AssetPrice{
		Symbol: "AAPL",
		Price:  decimal.NewFromInt(190),
		Date:   util.NewDate(2024, 1, 5),
	}

	t.Run("primary provider wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockPriceRepository := mock_repository.NewMockStockPriceRepository(ctrl)

		h := NewPriceService(stockPriceRepository, []QuoteProvider{
			fakeProvider{name: "primary", quote: aaplQuote},
			fakeProvider{name: "secondary", err: fmt.Errorf("should not be called")},
		})

		stockPriceRepository.EXPECT().Add(nil, []model.StockPrice{{
			Symbol: "AAPL",
			Date:   aaplQuote.Date,
			Price:  aaplQuote.Price,
		}}).Return(nil)

		price := h.GetCurrentPrice(ctx, "AAPL")
		require.NotNil(t, price)
		require.Equal(t, "primary", price.Source)
		require.True(t, price.Price.Equal(decimal.NewFromInt(190)))
	})

	t.Run("falls back to second provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockPriceRepository := mock_repository.NewMockStockPriceRepository(ctrl)

		h := NewPriceService(stockPriceRepository, []QuoteProvider{
			fakeProvider{name: "primary", err: fmt.Errorf("rate limited")},
			fakeProvider{name: "secondary", quote: aaplQuote},
		})

		stockPriceRepository.EXPECT().Add(nil, gomock.Any()).Return(nil)

		price := h.GetCurrentPrice(ctx, "AAPL")
		require.NotNil(t, price)
		require.Equal(t, "secondary", price.Source)
	})

	t.Run("falls back to stored latest when every provider fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockPriceRepository := mock_repository.NewMockStockPriceRepository(ctrl)

		h := NewPriceService(stockPriceRepository, []QuoteProvider{
			fakeProvider{name: "primary", err: fmt.Errorf("down")},
			fakeProvider{name: "secondary", err: fmt.Errorf("down")},
		})

		stockPriceRepository.EXPECT().GetLatest("AAPL").Return(&domain.AssetPrice{
			Symbol: "AAPL",
			Price:  decimal.NewFromInt(185),
			Date:   util.NewDate(2024, 1, 3),
		}, nil)

		price := h.GetCurrentPrice(ctx, "AAPL")
		require.NotNil(t, price)
		require.Equal(t, "cached (2024-01-03)", price.Source)
		require.True(t, price.Price.Equal(decimal.NewFromInt(185)))
	})

	t.Run("nil when no price exists anywhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockPriceRepository := mock_repository.NewMockStockPriceRepository(ctrl)

		h := NewPriceService(stockPriceRepository, []QuoteProvider{
			fakeProvider{name: "primary", err: fmt.Errorf("down")},
		})

		stockPriceRepository.EXPECT().GetLatest("ZZZZ").Return(nil, nil)

		require.Nil(t, h.GetCurrentPrice(ctx, "ZZZZ"))
	})
}

func Test_UpdatePrices(t *testing.T) {
	ctx := context.Background()
	history := []domain.AssetPrice{
		{Symbol: "AAPL", Price: decimal.NewFromInt(180), Date: util.NewDate(2024, 1, 2)},
		{Symbol: "AAPL", Price: decimal.NewFromInt(182), Date: util.NewDate(2024, 1, 3)},
	}

	t.Run("stores provider history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockPriceRepository := mock_repository.NewMockStockPriceRepository(ctrl)

		h := NewPriceService(stockPriceRepository, []QuoteProvider{
			fakeProvider{name: "primary", history: history},
		})

		stockPriceRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(tx interface{}, prices []model.StockPrice) error {
				require.Len(t, prices, 2)
				require.Equal(t, "AAPL", prices[0].Symbol)
				require.True(t, prices[1].Price.Equal(decimal.NewFromInt(182)))
				return nil
			})

		require.NoError(t, h.UpdatePrices(ctx, []string{"AAPL"}, 30))
	})

	t.Run("errors when every symbol fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockPriceRepository := mock_repository.NewMockStockPriceRepository(ctrl)

		h := NewPriceService(stockPriceRepository, []QuoteProvider{
			fakeProvider{name: "primary", err: fmt.Errorf("down")},
		})

		require.Error(t, h.UpdatePrices(ctx, []string{"AAPL", "MSFT"}, 30))
	})
}

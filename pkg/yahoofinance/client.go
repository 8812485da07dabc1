// Package yahoofinance is the primary market-data provider: current
// quotes and daily close history via Yahoo Finance.
package yahoofinance

import (
	"context"
	"fmt"
	"time"

	"stocktracker/internal/domain"
	"stocktracker/internal/util"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

type Client struct{}

func (c Client) Name() string {
	return "yahoo-finance"
}

func (c Client) GetQuote(ctx context.Context, symbol string) (*domain.AssetPrice, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("no quote returned for %s", symbol)
	}

	now := time.Now().UTC()
	return &domain.AssetPrice{
		Symbol: symbol,
		Price:  decimal.NewFromFloat(q.RegularMarketPrice),
		Date:   util.NewDate(now.Year(), int(now.Month()), now.Day()),
	}, nil
}

func (c Client) GetDailyHistory(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	prices := []domain.AssetPrice{}
	for iter.Next() {
		bar := iter.Bar()
		ts := time.Unix(int64(bar.Timestamp), 0).UTC()
		prices = append(prices, domain.AssetPrice{
			Symbol: symbol,
			Price:  bar.AdjClose,
			Date:   util.NewDate(ts.Year(), int(ts.Month()), ts.Day()),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get price history for %s: %w", symbol, err)
	}

	return prices, nil
}

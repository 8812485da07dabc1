package service

import (
	"context"
	"fmt"
	"time"

	"stocktracker/internal/db/models/postgres/public/model"
	"stocktracker/internal/domain"
	"stocktracker/internal/logger"
	"stocktracker/internal/repository"

	"github.com/shopspring/decimal"
)

// QuoteProvider is one leg of the market-data fallback chain. Both
// implementations live under pkg/ and do the actual network I/O; the
// engine itself never fetches anything.
type QuoteProvider interface {
	Name() string
	GetQuote(ctx context.Context, symbol string) (*domain.AssetPrice, error)
	GetDailyHistory(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error)
}

// CurrentPrice carries the provenance of a looked-up price so the
// dashboard can show where a number came from.
type CurrentPrice struct {
	Price  decimal.Decimal
	Date   time.Time
	Source string
}

type PriceService interface {
	// GetCurrentPrice walks the provider chain, falling back to the
	// latest stored price. Returns nil when no price exists anywhere -
	// callers must propagate that as "unavailable", never as zero.
	GetCurrentPrice(ctx context.Context, symbol string) *CurrentPrice
	GetCurrentPrices(ctx context.Context, symbols []string) map[string]CurrentPrice
	GetPriceHistory(symbol string, start, end time.Time) ([]domain.AssetPrice, error)
	GetPriceHistoryMany(symbols []string, start, end time.Time) (map[string][]domain.AssetPrice, error)
	// UpdatePrices ingests provider history into the price table. A
	// failing symbol does not stop the rest.
	UpdatePrices(ctx context.Context, symbols []string, daysBack int) error
}

type priceServiceHandler struct {
	StockPriceRepository repository.StockPriceRepository
	Providers            []QuoteProvider
}

func NewPriceService(stockPriceRepository repository.StockPriceRepository, providers []QuoteProvider) PriceService {
	return priceServiceHandler{
		StockPriceRepository: stockPriceRepository,
		Providers:            providers,
	}
}

func (h priceServiceHandler) GetCurrentPrice(ctx context.Context, symbol string) *CurrentPrice {
	log := logger.FromContext(ctx)

	for _, provider := range h.Providers {
		quote, err := provider.GetQuote(ctx, symbol)
		if err != nil {
			log.Warnf("provider %s failed for %s: %v", provider.Name(), symbol, err)
			continue
		}

		// store what we fetched so the cached fallback stays fresh
		err = h.StockPriceRepository.Add(nil, []model.StockPrice{{
			Symbol: symbol,
			Date:   quote.Date,
			Price:  quote.Price,
		}})
		if err != nil {
			log.Warnf("failed to store fetched price for %s: %v", symbol, err)
		}

		return &CurrentPrice{
			Price:  quote.Price,
			Date:   quote.Date,
			Source: provider.Name(),
		}
	}

	latest, err := h.StockPriceRepository.GetLatest(symbol)
	if err != nil {
		log.Warnf("failed to read cached price for %s: %v", symbol, err)
		return nil
	}
	if latest == nil {
		return nil
	}

	return &CurrentPrice{
		Price:  latest.Price,
		Date:   latest.Date,
		Source: fmt.Sprintf("cached (%s)", latest.Date.Format(time.DateOnly)),
	}
}

func (h priceServiceHandler) GetCurrentPrices(ctx context.Context, symbols []string) map[string]CurrentPrice {
	out := map[string]CurrentPrice{}
	for _, symbol := range symbols {
		if p := h.GetCurrentPrice(ctx, symbol); p != nil {
			out[symbol] = *p
		}
	}
	return out
}

func (h priceServiceHandler) GetPriceHistory(symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	return h.StockPriceRepository.List(symbol, start, end)
}

func (h priceServiceHandler) GetPriceHistoryMany(symbols []string, start, end time.Time) (map[string][]domain.AssetPrice, error) {
	return h.StockPriceRepository.ListMany(symbols, start, end)
}

func (h priceServiceHandler) UpdatePrices(ctx context.Context, symbols []string, daysBack int) error {
	log := logger.FromContext(ctx)
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -daysBack)

	failed := 0
	for _, symbol := range symbols {
		history := h.fetchHistory(ctx, symbol, start, end)
		if len(history) == 0 {
			log.Warnf("no provider returned history for %s", symbol)
			failed++
			continue
		}

		prices := make([]model.StockPrice, 0, len(history))
		for _, p := range history {
			prices = append(prices, model.StockPrice{
				Symbol: symbol,
				Date:   p.Date,
				Price:  p.Price,
			})
		}

		if err := h.StockPriceRepository.Add(nil, prices); err != nil {
			log.Warnf("failed to store %d prices for %s: %v", len(prices), symbol, err)
			failed++
		}
	}

	if failed == len(symbols) && len(symbols) > 0 {
		return fmt.Errorf("failed to update prices for all %d symbols", len(symbols))
	}

	return nil
}

func (h priceServiceHandler) fetchHistory(ctx context.Context, symbol string, start, end time.Time) []domain.AssetPrice {
	log := logger.FromContext(ctx)
	for _, provider := range h.Providers {
		history, err := provider.GetDailyHistory(ctx, symbol, start, end)
		if err != nil {
			log.Warnf("provider %s history failed for %s: %v", provider.Name(), symbol, err)
			continue
		}
		if len(history) > 0 {
			return history
		}
	}
	return nil
}

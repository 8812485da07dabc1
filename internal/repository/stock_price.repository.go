package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"stocktracker/internal/db/models/postgres/public/model"
	"stocktracker/internal/db/models/postgres/public/table"
	"stocktracker/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type StockPriceRepository interface {
	Add(tx *sql.Tx, prices []model.StockPrice) error
	// GetLatest returns the most recent stored price for the symbol, or
	// nil when the symbol has no stored prices at all.
	GetLatest(symbol string) (*domain.AssetPrice, error)
	List(symbol string, start, end time.Time) ([]domain.AssetPrice, error)
	ListMany(symbols []string, start, end time.Time) (map[string][]domain.AssetPrice, error)
}

type latestPriceCache map[string]domain.AssetPrice

type stockPriceRepositoryHandler struct {
	Db        *sql.DB
	Cache     latestPriceCache
	ReadMutex *sync.RWMutex
}

func NewStockPriceRepository(db *sql.DB) StockPriceRepository {
	return &stockPriceRepositoryHandler{
		Db:        db,
		Cache:     make(latestPriceCache),
		ReadMutex: &sync.RWMutex{},
	}
}

func (h *stockPriceRepositoryHandler) getLatestFromCache(symbol string) *domain.AssetPrice {
	h.ReadMutex.RLock()
	defer h.ReadMutex.RUnlock()
	if p, ok := h.Cache[symbol]; ok {
		return &p
	}
	return nil
}

func (h *stockPriceRepositoryHandler) addLatestToCache(p domain.AssetPrice) {
	h.ReadMutex.Lock()
	defer h.ReadMutex.Unlock()
	if existing, ok := h.Cache[p.Symbol]; !ok || existing.Date.Before(p.Date) {
		h.Cache[p.Symbol] = p
	}
}

func (h *stockPriceRepositoryHandler) Add(tx *sql.Tx, prices []model.StockPrice) error {
	if len(prices) == 0 {
		return nil
	}
	for i := range prices {
		prices[i].CreatedAt = time.Now().UTC()
	}

	query := table.StockPrice.
		INSERT(table.StockPrice.AllColumns).
		MODELS(prices).
		ON_CONFLICT(
			table.StockPrice.Symbol, table.StockPrice.Date,
		).DO_UPDATE(
		postgres.SET(
			table.StockPrice.Price.SET(table.StockPrice.EXCLUDED.Price),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add stock prices to db: %w", err)
	}

	for _, p := range prices {
		h.addLatestToCache(domain.AssetPrice{
			Symbol: p.Symbol,
			Price:  p.Price,
			Date:   p.Date,
		})
	}

	return nil
}

func (h *stockPriceRepositoryHandler) GetLatest(symbol string) (*domain.AssetPrice, error) {
	if p := h.getLatestFromCache(symbol); p != nil {
		return p, nil
	}

	query := table.StockPrice.
		SELECT(table.StockPrice.AllColumns).
		WHERE(table.StockPrice.Symbol.EQ(postgres.String(symbol))).
		ORDER_BY(table.StockPrice.Date.DESC()).
		LIMIT(1)

	result := model.StockPrice{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price for %s: %w", symbol, err)
	}

	out := domain.AssetPrice{
		Symbol: result.Symbol,
		Price:  result.Price,
		Date:   result.Date,
	}
	h.addLatestToCache(out)

	return &out, nil
}

func (h *stockPriceRepositoryHandler) List(symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	query := table.StockPrice.
		SELECT(table.StockPrice.AllColumns).
		WHERE(
			postgres.AND(
				table.StockPrice.Symbol.EQ(postgres.String(symbol)),
				table.StockPrice.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.StockPrice.Date.ASC())

	results := []model.StockPrice{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	return pricesToDomain(results), nil
}

func (h *stockPriceRepositoryHandler) ListMany(symbols []string, start, end time.Time) (map[string][]domain.AssetPrice, error) {
	if len(symbols) == 0 {
		return map[string][]domain.AssetPrice{}, nil
	}

	symbolExpressions := []postgres.Expression{}
	for _, s := range symbols {
		symbolExpressions = append(symbolExpressions, postgres.String(s))
	}

	query := table.StockPrice.
		SELECT(table.StockPrice.AllColumns).
		WHERE(
			postgres.AND(
				table.StockPrice.Symbol.IN(symbolExpressions...),
				table.StockPrice.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.StockPrice.Symbol.ASC(), table.StockPrice.Date.ASC())

	results := []model.StockPrice{}
	err := query.Query(h.Db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %d symbols: %w", len(symbols), err)
	}

	out := map[string][]domain.AssetPrice{}
	for _, p := range results {
		out[p.Symbol] = append(out[p.Symbol], domain.AssetPrice{
			Symbol: p.Symbol,
			Price:  p.Price,
			Date:   p.Date,
		})
	}

	return out, nil
}

func pricesToDomain(in []model.StockPrice) []domain.AssetPrice {
	out := []domain.AssetPrice{}
	for _, p := range in {
		out = append(out, domain.AssetPrice{
			Symbol: p.Symbol,
			Price:  p.Price,
			Date:   p.Date,
		})
	}
	return out
}

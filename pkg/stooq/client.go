// Package stooq is the fallback market-data provider. Stooq serves
// daily history as plain CSV with no API key, which makes it a cheap
// second leg when Yahoo is unavailable.
package stooq

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stocktracker/internal/domain"
	"stocktracker/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

const defaultBaseUrl = "https://stooq.com"

type Client struct {
	HttpClient *http.Client
	BaseUrl    string
}

func NewClient() Client {
	return Client{
		HttpClient: &http.Client{Timeout: 10 * time.Second},
		BaseUrl:    defaultBaseUrl,
	}
}

func (c Client) Name() string {
	return "stooq"
}

type priceRow struct {
	Date   string  `csv:"Date"`
	Open   string  `csv:"Open"`
	High   string  `csv:"High"`
	Low    string  `csv:"Low"`
	Close  float64 `csv:"Close"`
	Volume string  `csv:"Volume"`
}

func (c Client) GetDailyHistory(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	url := fmt.Sprintf("%s/q/d/l/?s=%s.us&d1=%s&d2=%s&i=d",
		c.BaseUrl, strings.ToLower(symbol), start.Format("20060102"), end.Format("20060102"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get stooq history for %s: %w", symbol, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stooq returned status %d for %s", response.StatusCode, symbol)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read stooq response for %s: %w", symbol, err)
	}

	return parseHistoryCSV(symbol, body)
}

// GetQuote approximates a current quote with the most recent daily
// close; stooq has no dedicated realtime endpoint.
func (c Client) GetQuote(ctx context.Context, symbol string) (*domain.AssetPrice, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -7)
	prices, err := c.GetDailyHistory(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("stooq has no recent prices for %s", symbol)
	}
	latest := prices[len(prices)-1]
	return &latest, nil
}

func parseHistoryCSV(symbol string, body []byte) ([]domain.AssetPrice, error) {
	// stooq answers unknown symbols with a plain-text message instead
	// of an error status
	if strings.HasPrefix(strings.TrimSpace(string(body)), "No data") {
		return []domain.AssetPrice{}, nil
	}

	rows := []priceRow{}
	if err := gocsv.UnmarshalBytes(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse stooq csv for %s: %w", symbol, err)
	}

	prices := []domain.AssetPrice{}
	for _, row := range rows {
		date, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in stooq csv for %s: %w", row.Date, symbol, err)
		}
		prices = append(prices, domain.AssetPrice{
			Symbol: symbol,
			Price:  decimal.NewFromFloat(row.Close),
			Date:   util.NewDate(date.Year(), int(date.Month()), date.Day()),
		})
	}

	return prices, nil
}

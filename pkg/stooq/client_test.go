package stooq

import (
	"testing"

	"stocktracker/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_parseHistoryCSV(t *testing.T) {
	t.Run("daily rows", func(t *testing.T) {
		body := []byte(`Date,Open,High,Low,Close,Volume
2024-01-02,184.35,186.40,183.92,185.64,82488700
2024-01-03,184.22,185.88,183.43,184.25,58414500
`)
		prices, err := parseHistoryCSV("AAPL", body)
		require.NoError(t, err)
		require.Len(t, prices, 2)
		require.Equal(t, "AAPL", prices[0].Symbol)
		require.Equal(t, util.NewDate(2024, 1, 2), prices[0].Date)
		require.True(t, prices[0].Price.Equal(decimal.NewFromFloat(185.64)))
	})

	t.Run("no data response", func(t *testing.T) {
		prices, err := parseHistoryCSV("ZZZZ", []byte("No data"))
		require.NoError(t, err)
		require.Len(t, prices, 0)
	})

	t.Run("malformed date", func(t *testing.T) {
		body := []byte("Date,Open,High,Low,Close,Volume\nnot-a-date,1,1,1,1,1\n")
		_, err := parseHistoryCSV("AAPL", body)
		require.Error(t, err)
	})
}

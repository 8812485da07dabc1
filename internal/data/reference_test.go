package data

import (
	"testing"
	"time"

	"stocktracker/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	ref, err := Load()
	require.NoError(t, err)

	t.Run("sector map", func(t *testing.T) {
		require.Equal(t, "Technology", ref.SectorBySymbol["AAPL"])
		require.Equal(t, "Real Estate", ref.SectorBySymbol["O"])
	})

	t.Run("earnings schedules keep calendar order", func(t *testing.T) {
		schedule, ok := ref.EarningsSchedules["AAPL"]
		require.True(t, ok)
		require.Len(t, schedule.Dates, 4)
		require.Equal(t, time.January, schedule.Dates[0].Month)
		require.Equal(t, 26, schedule.Dates[0].Day)
	})

	t.Run("monthly dividend payer has twelve slots", func(t *testing.T) {
		schedule, ok := ref.DividendSchedules["O"]
		require.True(t, ok)
		require.Equal(t, domain.ScheduleFrequencyMonthly, schedule.Frequency)
		require.Len(t, schedule.Dates, 12)
		require.True(t, schedule.PerShareAmount.Equal(decimal.NewFromFloat(0.0833)))
	})

	t.Run("non payers are marked none with no slots", func(t *testing.T) {
		schedule, ok := ref.DividendSchedules["TSLA"]
		require.True(t, ok)
		require.Equal(t, domain.ScheduleFrequencyNone, schedule.Frequency)
		require.Len(t, schedule.Dates, 0)
	})

	t.Run("default earnings schedule is quarterly", func(t *testing.T) {
		require.Len(t, ref.DefaultEarnings.Dates, 4)
	})
}

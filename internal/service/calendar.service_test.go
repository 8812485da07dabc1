package service

import (
	"context"
	"testing"
	"time"

	"stocktracker/internal/data"
	"stocktracker/internal/domain"
	"stocktracker/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testReference() *data.ReferenceData {
	return &data.ReferenceData{
		SectorBySymbol: map[string]string{"AAPL": "Technology"},
		EarningsSchedules: map[string]domain.RecurringSchedule{
			"AAPL": {
				Frequency: domain.ScheduleFrequencyQuarterly,
				Dates: []domain.MonthDay{
					{Month: time.January, Day: 26},
					{Month: time.April, Day: 25},
					{Month: time.July, Day: 25},
					{Month: time.October, Day: 31},
				},
			},
		},
		DividendSchedules: map[string]domain.DividendSchedule{
			"AAPL": {
				RecurringSchedule: domain.RecurringSchedule{
					Frequency: domain.ScheduleFrequencyQuarterly,
					Dates: []domain.MonthDay{
						{Month: time.February, Day: 9},
						{Month: time.May, Day: 10},
						{Month: time.August, Day: 10},
						{Month: time.November, Day: 10},
					},
				},
				PerShareAmount: decimal.NewFromFloat(0.24),
			},
			"TSLA": {
				RecurringSchedule: domain.RecurringSchedule{Frequency: domain.ScheduleFrequencyNone},
			},
		},
		DefaultEarnings: domain.RecurringSchedule{
			Frequency: domain.ScheduleFrequencyQuarterly,
			Dates: []domain.MonthDay{
				{Month: time.February, Day: 15},
				{Month: time.April, Day: 15},
				{Month: time.July, Day: 15},
				{Month: time.October, Day: 15},
			},
		},
	}
}

func Test_GetUpcomingEvents(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	positions := map[string]domain.Position{
		"AAPL": {Symbol: "AAPL", Quantity: decimal.NewFromInt(100)},
		"TSLA": {Symbol: "TSLA", Quantity: decimal.NewFromInt(5)},
	}

	h := NewCalendarService(stubPositionService{positions: positions}, testReference())

	t.Run("projects earnings and dividends in date order", func(t *testing.T) {
		events, err := h.GetUpcomingEvents(ctx, userID, "main", util.NewDate(2024, 1, 1))
		require.NoError(t, err)

		// AAPL earnings 1/26, AAPL dividend 2/9, TSLA default earnings
		// 2/15; TSLA pays no dividend
		require.Len(t, events, 3)

		require.Equal(t, "AAPL", events[0].Symbol)
		require.Equal(t, domain.CalendarEventTypeEarnings, events[0].EventType)
		require.Equal(t, util.NewDate(2024, 1, 26), events[0].Date)
		require.Equal(t, 25, events[0].DaysUntil)
		require.Nil(t, events[0].Amount)

		require.Equal(t, domain.CalendarEventTypeDividend, events[1].EventType)
		require.Equal(t, util.NewDate(2024, 2, 9), events[1].Date)
		require.NotNil(t, events[1].Amount)
		require.True(t, events[1].Amount.Equal(decimal.NewFromInt(24)))

		require.Equal(t, "TSLA", events[2].Symbol)
		require.Equal(t, domain.CalendarEventTypeEarnings, events[2].EventType)
		require.Equal(t, util.NewDate(2024, 2, 15), events[2].Date)
	})

	t.Run("wraps into next year after the last slot", func(t *testing.T) {
		events, err := h.GetUpcomingEvents(ctx, userID, "main", util.NewDate(2024, 12, 1))
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2025, 1, 26), events[0].Date)
	})

	t.Run("empty portfolio yields no events", func(t *testing.T) {
		h := NewCalendarService(stubPositionService{positions: map[string]domain.Position{}}, testReference())
		events, err := h.GetUpcomingEvents(ctx, userID, "main", util.NewDate(2024, 1, 1))
		require.NoError(t, err)
		require.Len(t, events, 0)
	})
}

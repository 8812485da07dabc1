package calculator

import (
	"testing"
	"time"

	"stocktracker/internal/domain"
	"stocktracker/internal/util"

	"github.com/stretchr/testify/require"
)

func quarterly(dates ...domain.MonthDay) domain.RecurringSchedule {
	return domain.RecurringSchedule{
		Frequency: domain.ScheduleFrequencyQuarterly,
		Dates:     dates,
	}
}

func Test_NextOccurrence(t *testing.T) {
	t.Run("first slot at or after the reference date", func(t *testing.T) {
		schedule := quarterly(
			domain.MonthDay{Month: time.February, Day: 15},
			domain.MonthDay{Month: time.May, Day: 15},
			domain.MonthDay{Month: time.August, Day: 15},
			domain.MonthDay{Month: time.November, Day: 15},
		)

		next, ok := NextOccurrence(schedule, util.NewDate(2024, 3, 1))
		require.True(t, ok)
		require.Equal(t, util.NewDate(2024, 5, 15), next)
	})

	t.Run("reference date exactly on a slot counts", func(t *testing.T) {
		schedule := quarterly(domain.MonthDay{Month: time.May, Day: 15})

		next, ok := NextOccurrence(schedule, util.NewDate(2024, 5, 15))
		require.True(t, ok)
		require.Equal(t, util.NewDate(2024, 5, 15), next)
	})

	t.Run("wraps to the first slot of next year", func(t *testing.T) {
		schedule := quarterly(domain.MonthDay{Month: time.January, Day: 15})

		next, ok := NextOccurrence(schedule, util.NewDate(2024, 12, 20))
		require.True(t, ok)
		require.Equal(t, util.NewDate(2025, 1, 15), next)
	})

	t.Run("invalid calendar days clamp to month end", func(t *testing.T) {
		schedule := quarterly(domain.MonthDay{Month: time.February, Day: 30})

		next, ok := NextOccurrence(schedule, util.NewDate(2024, 2, 1))
		require.True(t, ok)
		require.Equal(t, util.NewDate(2024, 2, 29), next, "2024 is a leap year")

		next, ok = NextOccurrence(schedule, util.NewDate(2025, 2, 1))
		require.True(t, ok)
		require.Equal(t, util.NewDate(2025, 2, 28), next)
	})

	t.Run("monthly schedules roll to the next month", func(t *testing.T) {
		dates := make([]domain.MonthDay, 0, 12)
		for m := time.January; m <= time.December; m++ {
			dates = append(dates, domain.MonthDay{Month: m, Day: 15})
		}
		schedule := domain.RecurringSchedule{
			Frequency: domain.ScheduleFrequencyMonthly,
			Dates:     dates,
		}

		next, ok := NextOccurrence(schedule, util.NewDate(2024, 6, 20))
		require.True(t, ok)
		require.Equal(t, util.NewDate(2024, 7, 15), next)
	})

	t.Run("none and empty schedules project nothing", func(t *testing.T) {
		_, ok := NextOccurrence(domain.RecurringSchedule{
			Frequency: domain.ScheduleFrequencyNone,
		}, util.NewDate(2024, 1, 1))
		require.False(t, ok)

		_, ok = NextOccurrence(domain.RecurringSchedule{
			Frequency: domain.ScheduleFrequencyQuarterly,
		}, util.NewDate(2024, 1, 1))
		require.False(t, ok)
	})
}

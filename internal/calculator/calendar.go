package calculator

import (
	"time"

	"stocktracker/internal/domain"
	"stocktracker/internal/util"
)

// NextOccurrence scans the schedule's (month, day) pairs - kept in
// calendar order - for the first date at or after ref in ref's year,
// wrapping to the first pair of next year when the remaining slots have
// passed. Days that don't exist in their month (Feb 30) clamp to the
// month's last day instead of failing.
//
// The second return is false for empty or "none" schedules, which have
// nothing to project.
func NextOccurrence(schedule domain.RecurringSchedule, ref time.Time) (time.Time, bool) {
	if schedule.Frequency == domain.ScheduleFrequencyNone || len(schedule.Dates) == 0 {
		return time.Time{}, false
	}

	refDate := util.NewDate(ref.Year(), int(ref.Month()), ref.Day())

	for _, md := range schedule.Dates {
		occurrence := util.ClampedDate(refDate.Year(), md.Month, md.Day)
		if !occurrence.Before(refDate) {
			return occurrence, true
		}
	}

	first := schedule.Dates[0]
	return util.ClampedDate(refDate.Year()+1, first.Month, first.Day), true
}

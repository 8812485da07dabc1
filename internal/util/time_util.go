package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, -1).Day()
}

// ClampedDate builds a date, clamping the day to the end of the month
// when it overflows (e.g. Feb 30 becomes Feb 28/29).
func ClampedDate(year int, month time.Month, day int) time.Time {
	if last := LastDayOfMonth(year, month); day > last {
		day = last
	}
	return NewDate(year, int(month), day)
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ScheduleFrequency string

const (
	ScheduleFrequencyQuarterly ScheduleFrequency = "quarterly"
	ScheduleFrequencyMonthly   ScheduleFrequency = "monthly"
	ScheduleFrequencyNone      ScheduleFrequency = "none"
)

// MonthDay is one fixed calendar slot in a yearly recurring schedule.
type MonthDay struct {
	Month time.Month
	Day   int
}

// RecurringSchedule is static per-symbol metadata describing when a
// periodic event (earnings release, dividend ex-date) recurs each year.
// Dates are kept in calendar order.
type RecurringSchedule struct {
	Frequency ScheduleFrequency
	Dates     []MonthDay
}

// DividendSchedule extends a RecurringSchedule with the per-share payout
// used to project expected amounts. Frequency "none" means the symbol
// pays no dividend and must be excluded from projection entirely.
type DividendSchedule struct {
	RecurringSchedule
	PerShareAmount decimal.Decimal
	YieldPct       float64
}

type CalendarEventType string

const (
	CalendarEventTypeEarnings CalendarEventType = "earnings"
	CalendarEventTypeDividend CalendarEventType = "dividend"
)

// CalendarEvent is one projected upcoming event for a held symbol.
// Amount is only set for dividends (held quantity * per-share payout).
type CalendarEvent struct {
	Symbol    string            `json:"symbol"`
	EventType CalendarEventType `json:"eventType"`
	Date      time.Time         `json:"date"`
	DaysUntil int               `json:"daysUntil"`
	Amount    *decimal.Decimal  `json:"amount,omitempty"`
}

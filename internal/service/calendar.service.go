package service

import (
	"context"
	"sort"
	"time"

	"stocktracker/internal/calculator"
	"stocktracker/internal/data"
	"stocktracker/internal/domain"
	"stocktracker/internal/util"

	"github.com/google/uuid"
)

type CalendarService interface {
	// GetUpcomingEvents projects the next earnings date for every held
	// symbol and the next dividend date for every held payer, relative
	// to ref. Dividend amounts are held quantity times the per-share
	// payout.
	GetUpcomingEvents(ctx context.Context, userID uuid.UUID, portfolioName string, ref time.Time) ([]domain.CalendarEvent, error)
}

type calendarServiceHandler struct {
	PositionService PositionService
	Reference       *data.ReferenceData
}

func NewCalendarService(positionService PositionService, reference *data.ReferenceData) CalendarService {
	return calendarServiceHandler{
		PositionService: positionService,
		Reference:       reference,
	}
}

func (h calendarServiceHandler) GetUpcomingEvents(ctx context.Context, userID uuid.UUID, portfolioName string, ref time.Time) ([]domain.CalendarEvent, error) {
	positions, err := h.PositionService.GetPositions(userID, portfolioName)
	if err != nil {
		return nil, err
	}

	refDate := util.NewDate(ref.Year(), int(ref.Month()), ref.Day())

	events := []domain.CalendarEvent{}
	for symbol, position := range positions {
		earnings, ok := h.Reference.EarningsSchedules[symbol]
		if !ok {
			earnings = h.Reference.DefaultEarnings
		}
		if date, ok := calculator.NextOccurrence(earnings, refDate); ok {
			events = append(events, domain.CalendarEvent{
				Symbol:    symbol,
				EventType: domain.CalendarEventTypeEarnings,
				Date:      date,
				DaysUntil: daysBetween(refDate, date),
			})
		}

		dividend, ok := h.Reference.DividendSchedules[symbol]
		if !ok || dividend.Frequency == domain.ScheduleFrequencyNone {
			continue
		}
		if date, ok := calculator.NextOccurrence(dividend.RecurringSchedule, refDate); ok {
			amount := position.Quantity.Mul(dividend.PerShareAmount)
			events = append(events, domain.CalendarEvent{
				Symbol:    symbol,
				EventType: domain.CalendarEventTypeDividend,
				Date:      date,
				DaysUntil: daysBetween(refDate, date),
				Amount:    util.DecimalPointer(amount),
			})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		if events[i].Symbol != events[j].Symbol {
			return events[i].Symbol < events[j].Symbol
		}
		return events[i].EventType < events[j].EventType
	})

	return events, nil
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// Package data holds the static reference tables the analytics
// services are configured with: the symbol -> sector map and the
// per-symbol earnings/dividend schedules. The tables ship as embedded
// CSVs so they stay data, not code, and can be swapped in tests.
package data

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	"stocktracker/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

//go:embed sectors.csv
var sectorsCSV []byte

//go:embed earnings.csv
var earningsCSV []byte

//go:embed dividends.csv
var dividendsCSV []byte

type sectorRow struct {
	Symbol string `csv:"symbol"`
	Sector string `csv:"sector"`
}

type earningsRow struct {
	Symbol string `csv:"symbol"`
	Months string `csv:"months"`
	Days   string `csv:"days"`
}

type dividendRow struct {
	Symbol         string  `csv:"symbol"`
	Frequency      string  `csv:"frequency"`
	Months         string  `csv:"months"`
	Day            int     `csv:"day"`
	PerShareAmount float64 `csv:"per_share_amount"`
	YieldPct       float64 `csv:"yield_pct"`
}

type ReferenceData struct {
	SectorBySymbol    map[string]string
	EarningsSchedules map[string]domain.RecurringSchedule
	DividendSchedules map[string]domain.DividendSchedule
	// DefaultEarnings is applied to held symbols missing from the
	// earnings table: a generic mid-quarter reporting schedule.
	DefaultEarnings domain.RecurringSchedule
}

func Load() (*ReferenceData, error) {
	sectors := []sectorRow{}
	if err := gocsv.UnmarshalBytes(sectorsCSV, &sectors); err != nil {
		return nil, fmt.Errorf("failed to parse sectors.csv: %w", err)
	}
	sectorBySymbol := map[string]string{}
	for _, row := range sectors {
		sectorBySymbol[row.Symbol] = row.Sector
	}

	earnings := []earningsRow{}
	if err := gocsv.UnmarshalBytes(earningsCSV, &earnings); err != nil {
		return nil, fmt.Errorf("failed to parse earnings.csv: %w", err)
	}
	earningsSchedules := map[string]domain.RecurringSchedule{}
	for _, row := range earnings {
		dates, err := parseMonthDays(row.Months, row.Days)
		if err != nil {
			return nil, fmt.Errorf("bad earnings schedule for %s: %w", row.Symbol, err)
		}
		earningsSchedules[row.Symbol] = domain.RecurringSchedule{
			Frequency: domain.ScheduleFrequencyQuarterly,
			Dates:     dates,
		}
	}

	dividends := []dividendRow{}
	if err := gocsv.UnmarshalBytes(dividendsCSV, &dividends); err != nil {
		return nil, fmt.Errorf("failed to parse dividends.csv: %w", err)
	}
	dividendSchedules := map[string]domain.DividendSchedule{}
	for _, row := range dividends {
		frequency := domain.ScheduleFrequency(row.Frequency)
		schedule := domain.DividendSchedule{
			RecurringSchedule: domain.RecurringSchedule{Frequency: frequency},
			PerShareAmount:    decimal.NewFromFloat(row.PerShareAmount),
			YieldPct:          row.YieldPct,
		}
		if frequency != domain.ScheduleFrequencyNone {
			months, err := parseIntList(row.Months)
			if err != nil {
				return nil, fmt.Errorf("bad dividend schedule for %s: %w", row.Symbol, err)
			}
			for _, m := range months {
				schedule.Dates = append(schedule.Dates, domain.MonthDay{
					Month: time.Month(m),
					Day:   row.Day,
				})
			}
		}
		dividendSchedules[row.Symbol] = schedule
	}

	return &ReferenceData{
		SectorBySymbol:    sectorBySymbol,
		EarningsSchedules: earningsSchedules,
		DividendSchedules: dividendSchedules,
		DefaultEarnings: domain.RecurringSchedule{
			Frequency: domain.ScheduleFrequencyQuarterly,
			Dates: []domain.MonthDay{
				{Month: time.February, Day: 15},
				{Month: time.April, Day: 15},
				{Month: time.July, Day: 15},
				{Month: time.October, Day: 15},
			},
		},
	}, nil
}

func parseIntList(in string) ([]int, error) {
	out := []int{}
	for _, part := range strings.Split(in, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid list entry %q: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseMonthDays(months, days string) ([]domain.MonthDay, error) {
	monthList, err := parseIntList(months)
	if err != nil {
		return nil, err
	}
	dayList, err := parseIntList(days)
	if err != nil {
		return nil, err
	}
	if len(monthList) != len(dayList) {
		return nil, fmt.Errorf("months and days differ in length: %d vs %d", len(monthList), len(dayList))
	}

	out := make([]domain.MonthDay, 0, len(monthList))
	for i := range monthList {
		out = append(out, domain.MonthDay{
			Month: time.Month(monthList[i]),
			Day:   dayList[i],
		})
	}
	return out, nil
}

package calculator

import (
	"fmt"
	"math"
	"time"

	"github.com/montanaflynn/stats"
)

type SeriesMetricsResult struct {
	TotalReturnPct   float64
	AnnualizedReturn float64
	AnnualizedStdev  float64
}

// CalculateSeriesMetrics derives return statistics from a daily
// portfolio value series. The stdev of daily returns is annualized with
// sqrt(252) trading days.
func CalculateSeriesMetrics(values []float64, dates []time.Time) (*SeriesMetricsResult, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("cannot calculate metrics on < 2 values")
	}
	if len(values) != len(dates) {
		return nil, fmt.Errorf("values and dates must have equal length, got %d and %d", len(values), len(dates))
	}
	if values[0] == 0 {
		return nil, fmt.Errorf("cannot calculate metrics from a zero starting value")
	}

	returns := []float64{}
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		returns = append(returns, (values[i]-values[i-1])/values[i-1])
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev of returns: %w", err)
	}

	startValue := values[0]
	endValue := values[len(values)-1]
	totalReturnPct := (endValue - startValue) / startValue * 100

	numYears := dates[len(dates)-1].Sub(dates[0]).Hours() / (365 * 24)
	annualizedReturn := 0.0
	if numYears > 0 && endValue > 0 {
		annualizedReturn = math.Pow(endValue/startValue, 1/numYears) - 1
	}

	return &SeriesMetricsResult{
		TotalReturnPct:   totalReturnPct,
		AnnualizedReturn: annualizedReturn,
		AnnualizedStdev:  stdev * math.Sqrt(252),
	}, nil
}

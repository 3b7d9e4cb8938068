package entity

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedPeriod is returned when a period key is not one of the presets.
var ErrUnsupportedPeriod = errors.New("unsupported period")

// Period is a lookback preset for the chart range.
type Period string

const (
	Period1M  Period = "1m"
	Period3M  Period = "3m"
	Period6M  Period = "6m"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
	PeriodAll Period = "all"

	// DefaultPeriod is used when the request does not name one.
	DefaultPeriod = Period1Y
)

var periodDays = map[Period]int{
	Period1M: 30,
	Period3M: 90,
	Period6M: 180,
	Period1Y: 365,
	Period2Y: 730,
	Period5Y: 1825,
}

// ParsePeriod maps a request value onto a Period. The empty string yields DefaultPeriod.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return DefaultPeriod, nil
	}
	p := Period(s)
	if p == PeriodAll {
		return p, nil
	}
	if _, ok := periodDays[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPeriod, s)
	}
	return p, nil
}

// Range returns the calendar window [from, to] ending on the date of now.
// PeriodAll returns zero times, meaning unbounded.
func (p Period) Range(now time.Time) (from, to time.Time) {
	days, ok := periodDays[p]
	if !ok {
		return time.Time{}, time.Time{}
	}
	y, m, d := now.Date()
	to = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	from = to.AddDate(0, 0, -days)
	return from, to
}

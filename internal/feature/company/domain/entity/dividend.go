package entity

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDividendUnit is returned for an unknown dividend yield unit.
var ErrUnsupportedDividendUnit = errors.New("unsupported dividend unit")

// DividendUnit tells how dividend_yield is stored in the snapshot.
type DividendUnit string

const (
	DividendFraction DividendUnit = "fraction" // 0.0193 means 1.93%
	DividendPercent  DividendUnit = "percent"  // 1.93 means 1.93%
)

// ParseDividendUnit validates a configured unit. The empty string yields DividendFraction.
func ParseDividendUnit(s string) (DividendUnit, error) {
	switch DividendUnit(s) {
	case "", DividendFraction:
		return DividendFraction, nil
	case DividendPercent:
		return DividendPercent, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDividendUnit, s)
}

// Percent converts a stored yield into percent.
func (u DividendUnit) Percent(v float64) float64 {
	if u == DividendPercent {
		return v
	}
	return v * 100
}

// Package entity defines the domain models for sector comparison.
package entity

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMetric is returned for a metric outside the comparable set.
var ErrUnsupportedMetric = errors.New("unsupported metric")

// Metric is a comparable financial_data column.
type Metric string

const (
	MetricMarketCap      Metric = "market_cap"
	MetricTrailingPE     Metric = "trailing_pe"
	MetricPriceToBook    Metric = "price_to_book"
	MetricReturnOnEquity Metric = "return_on_equity"
	MetricDividendYield  Metric = "dividend_yield"
)

// AllMetrics lists every comparable metric in display order.
var AllMetrics = []Metric{
	MetricMarketCap,
	MetricTrailingPE,
	MetricPriceToBook,
	MetricReturnOnEquity,
	MetricDividendYield,
}

// ParseMetric maps request text onto a Metric.
func ParseMetric(s string) (Metric, error) {
	for _, m := range AllMetrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMetric, s)
}

// Column returns the financial_data column of the metric. Only values from
// AllMetrics ever reach SQL.
func (m Metric) Column() (string, error) {
	if _, err := ParseMetric(string(m)); err != nil {
		return "", err
	}
	return string(m), nil
}

// Package dto defines data transfer objects for the sector HTTP API.
package dto

// EntryItem is one bar of a sector comparison chart.
type EntryItem struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
}

// ComparisonResponse ranks a sector by one metric.
type ComparisonResponse struct {
	Sector  string      `json:"sector"`
	Metric  string      `json:"metric"`
	Entries []EntryItem `json:"entries"`
}

package entity

// Entry is one company's value of the compared metric.
type Entry struct {
	Symbol string
	Name   string
	Value  float64
}

// Comparison ranks a sector's companies by one metric, highest first.
type Comparison struct {
	Sector  string
	Metric  Metric
	Entries []Entry
}

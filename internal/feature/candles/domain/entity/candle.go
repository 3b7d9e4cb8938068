// Package entity defines the domain models for the candles feature.
package entity

import "time"

// DailyBar is one OHLCV row for a symbol on a single trading date.
// Prices are expected to satisfy low <= open,close <= high but this is not enforced.
type DailyBar struct {
	Symbol string    // Ticker symbol (e.g., "AAPL")
	Date   time.Time // Trading date, unique per symbol
	Open   float64   // Opening price
	High   float64   // Highest price of the day
	Low    float64   // Lowest price of the day
	Close  float64   // Closing price
	Volume int64     // Traded volume
}

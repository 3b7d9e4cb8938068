// Package indicator derives technical indicators and return statistics from
// an ascending series of daily bars.
//
// Every function here is pure: inputs are never mutated and no state is
// retained between calls. A value that needs more history than the series
// provides is reported as an invalid null.Float rather than zero.
package indicator

import (
	"github.com/guregu/null/v6"

	"stock_dashboard/internal/feature/candles/domain/entity"
)

// TradingDaysPerYear annualizes daily statistics.
const TradingDaysPerYear = 252

// Config holds the window sizes used by Compute.
type Config struct {
	SMAWindows      []int   // close SMA windows, e.g. 20, 50, 200
	VolumeWindow    int     // volume SMA window
	FastSpan        int     // fast EMA span (MACD)
	SlowSpan        int     // slow EMA span (MACD)
	SignalSpan      int     // MACD signal EMA span
	RSIWindow       int     // RSI averaging window
	BollingerWindow int     // Bollinger middle band window
	BollingerK      float64 // Bollinger width in standard deviations
}

// DefaultConfig returns the dashboard's standard parameters.
func DefaultConfig() Config {
	return Config{
		SMAWindows:      []int{20, 50, 200},
		VolumeWindow:    20,
		FastSpan:        12,
		SlowSpan:        26,
		SignalSpan:      9,
		RSIWindow:       14,
		BollingerWindow: 20,
		BollingerK:      2,
	}
}

// Row is one bar with every derived field attached.
type Row struct {
	Bar entity.DailyBar

	SMA       map[int]null.Float // keyed by window
	VolumeSMA null.Float
	EMAFast   float64
	EMASlow   float64

	MACD          float64
	MACDSignal    float64
	MACDHistogram float64

	RSI null.Float

	BBMiddle null.Float
	BBUpper  null.Float
	BBLower  null.Float

	DailyReturn      null.Float
	CumulativeReturn float64
}

// Compute returns one Row per bar, in input order.
func Compute(bars []entity.DailyBar, cfg Config) []Row {
	closes := Closes(bars)

	avg := MovingAverages(bars, cfg)
	macd := MACD(closes, cfg.FastSpan, cfg.SlowSpan, cfg.SignalSpan)
	rsi := RSI(closes, cfg.RSIWindow)
	bands := BollingerBands(closes, cfg.BollingerWindow, cfg.BollingerK)
	ret := Returns(closes)

	rows := make([]Row, len(bars))
	for i, b := range bars {
		sma := make(map[int]null.Float, len(avg.SMA))
		for w, s := range avg.SMA {
			sma[w] = s[i]
		}
		rows[i] = Row{
			Bar:              b,
			SMA:              sma,
			VolumeSMA:        avg.VolumeSMA[i],
			EMAFast:          avg.EMAFast[i],
			EMASlow:          avg.EMASlow[i],
			MACD:             macd.Line[i],
			MACDSignal:       macd.Signal[i],
			MACDHistogram:    macd.Histogram[i],
			RSI:              rsi[i],
			BBMiddle:         bands[i].Middle,
			BBUpper:          bands[i].Upper,
			BBLower:          bands[i].Lower,
			DailyReturn:      ret.Daily[i],
			CumulativeReturn: ret.Cumulative[i],
		}
	}
	return rows
}

// Closes extracts the close prices.
func Closes(bars []entity.DailyBar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// Volumes extracts the traded volumes as floats.
func Volumes(bars []entity.DailyBar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = float64(b.Volume)
	}
	return out
}

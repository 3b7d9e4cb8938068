package indicator

import (
	"math"

	"github.com/guregu/null/v6"
)

// ReturnSeries holds simple daily returns and the compounded return since the first bar.
type ReturnSeries struct {
	Daily      []null.Float // undefined at position 0
	Cumulative []float64    // 0 at position 0
}

// Returns computes close[i]/close[i-1]-1 and its running compounded product.
func Returns(closes []float64) ReturnSeries {
	daily := make([]null.Float, len(closes))
	cum := make([]float64, len(closes))

	growth := 1.0
	for i := 1; i < len(closes); i++ {
		r := closes[i]/closes[i-1] - 1
		daily[i] = null.FloatFrom(r)
		growth *= 1 + r
		cum[i] = growth - 1
	}
	return ReturnSeries{Daily: daily, Cumulative: cum}
}

// Summary is the scalar performance record for a series. All values are fractions.
type Summary struct {
	TotalReturn          float64
	AnnualizedVolatility float64
	SharpeRatio          float64
	MaxDrawdown          float64
	Observations         int // number of daily returns
}

// Summarize computes total return, annualized volatility, Sharpe ratio and
// maximum drawdown over the realized daily returns.
//
// The standard deviation is the sample deviation; with fewer than two
// returns it is taken as 0, and a zero deviation yields a Sharpe ratio of 0.
func Summarize(closes []float64) Summary {
	var s Summary
	if len(closes) == 0 {
		return s
	}

	ret := Returns(closes)
	realized := make([]float64, 0, len(closes)-1)
	for _, r := range ret.Daily {
		if r.Valid {
			realized = append(realized, r.Float64)
		}
	}

	s.Observations = len(realized)
	s.TotalReturn = ret.Cumulative[len(ret.Cumulative)-1]

	sd := sampleStdDev(realized)
	annual := math.Sqrt(TradingDaysPerYear)
	s.AnnualizedVolatility = sd * annual
	if sd != 0 {
		s.SharpeRatio = mean(realized) / sd * annual
	}
	s.MaxDrawdown = MaxDrawdown(closes)
	return s
}

// MaxDrawdown returns min(close/runningMax - 1), which is never positive.
func MaxDrawdown(closes []float64) float64 {
	worst := 0.0
	peak := math.Inf(-1)
	for _, c := range closes {
		if c > peak {
			peak = c
		}
		if dd := c/peak - 1; dd < worst {
			worst = dd
		}
	}
	return worst
}

package indicator

import (
	"github.com/guregu/null/v6"
	"github.com/markcheno/go-talib"

	"stock_dashboard/internal/feature/candles/domain/entity"
)

// Averages bundles the moving averages derived from a bar series.
type Averages struct {
	SMA       map[int][]null.Float // close SMA per window
	VolumeSMA []null.Float
	EMAFast   []float64
	EMASlow   []float64
}

// MovingAverages computes the close SMAs for cfg.SMAWindows, the volume SMA
// and the fast/slow close EMAs.
func MovingAverages(bars []entity.DailyBar, cfg Config) Averages {
	closes := Closes(bars)

	sma := make(map[int][]null.Float, len(cfg.SMAWindows))
	for _, w := range cfg.SMAWindows {
		sma[w] = SMA(closes, w)
	}
	return Averages{
		SMA:       sma,
		VolumeSMA: SMA(Volumes(bars), cfg.VolumeWindow),
		EMAFast:   EMA(closes, cfg.FastSpan),
		EMASlow:   EMA(closes, cfg.SlowSpan),
	}
}

// SMA returns the trailing simple moving average. Position i is defined
// only once window values (i-window+1..i) exist.
func SMA(values []float64, window int) []null.Float {
	out := make([]null.Float, len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	raw := talib.Sma(values, window)
	for i := window - 1; i < len(values); i++ {
		out[i] = null.FloatFrom(raw[i])
	}
	return out
}

// EMA returns the exponential moving average with alpha = 2/(span+1),
// seeded by the first value. It is defined at every position.
func EMA(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	if span < 1 {
		span = 1
	}
	alpha := 2 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		// prev + alpha*(x-prev) keeps a constant series exactly constant.
		out[i] = out[i-1] + alpha*(values[i]-out[i-1])
	}
	return out
}

package indicator

import "github.com/guregu/null/v6"

// RSI returns the relative strength index where average gain and loss are
// simple means over the last window close-to-close deltas. The first window
// positions are undefined because the delta at position 0 does not exist.
func RSI(closes []float64, window int) []null.Float {
	out := make([]null.Float, len(closes))
	if window <= 0 || len(closes) <= window {
		return out
	}
	w := float64(window)
	for i := window; i < len(closes); i++ {
		var gain, loss float64
		for j := i - window + 1; j <= i; j++ {
			d := closes[j] - closes[j-1]
			if d > 0 {
				gain += d
			} else {
				loss -= d
			}
		}
		out[i] = null.FloatFrom(rsiFromAverages(gain/w, loss/w))
	}
	return out
}

// rsiFromAverages treats a zero average loss as an infinite RS.
func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

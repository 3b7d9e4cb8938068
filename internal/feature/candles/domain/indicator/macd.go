package indicator

// MACDSeries holds the MACD line, its signal line and their difference.
type MACDSeries struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes EMA(fast) - EMA(slow), its EMA(signal) and the histogram.
// Values are defined from the first bar; early values carry the EMA seeding bias.
func MACD(closes []float64, fast, slow, signal int) MACDSeries {
	f := EMA(closes, fast)
	s := EMA(closes, slow)

	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = f[i] - s[i]
	}
	sig := EMA(line, signal)

	hist := make([]float64, len(closes))
	for i := range closes {
		hist[i] = line[i] - sig[i]
	}
	return MACDSeries{Line: line, Signal: sig, Histogram: hist}
}

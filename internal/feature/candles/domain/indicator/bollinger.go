package indicator

import "github.com/guregu/null/v6"

// Bands is the Bollinger envelope at one position.
type Bands struct {
	Middle null.Float
	Upper  null.Float
	Lower  null.Float
}

// BollingerBands returns SMA(window) +/- k sample standard deviations of the
// same window. Positions with fewer than window closes are undefined.
func BollingerBands(closes []float64, window int, k float64) []Bands {
	out := make([]Bands, len(closes))
	middle := SMA(closes, window)
	for i := range closes {
		if !middle[i].Valid {
			continue
		}
		m := middle[i].Float64
		width := k * sampleStdDev(closes[i-window+1:i+1])
		out[i] = Bands{
			Middle: middle[i],
			Upper:  null.FloatFrom(m + width),
			Lower:  null.FloatFrom(m - width),
		}
	}
	return out
}

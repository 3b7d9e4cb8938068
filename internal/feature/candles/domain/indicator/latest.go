package indicator

import (
	"time"

	"github.com/guregu/null/v6"
)

// Snapshot summarizes the most recent row for the dashboard's metric cards.
type Snapshot struct {
	Date              time.Time
	Close             float64
	RSI               null.Float
	MACD              float64
	SMADeviation      null.Float // (close - SMA)/SMA
	BollingerPosition null.Float // (close - lower)/(upper - lower)
}

// Latest builds a Snapshot from the last row, using the SMA of smaWindow for
// the deviation. It reports false when rows is empty.
//
// A zero SMA or a zero band width yields 0 rather than a division fault; an
// undefined SMA or band yields an undefined value.
func Latest(rows []Row, smaWindow int) (Snapshot, bool) {
	if len(rows) == 0 {
		return Snapshot{}, false
	}
	r := rows[len(rows)-1]
	s := Snapshot{
		Date:  r.Bar.Date,
		Close: r.Bar.Close,
		RSI:   r.RSI,
		MACD:  r.MACD,
	}

	if sma := r.SMA[smaWindow]; sma.Valid {
		if sma.Float64 == 0 {
			s.SMADeviation = null.FloatFrom(0)
		} else {
			s.SMADeviation = null.FloatFrom((r.Bar.Close - sma.Float64) / sma.Float64)
		}
	}

	if r.BBUpper.Valid && r.BBLower.Valid {
		width := r.BBUpper.Float64 - r.BBLower.Float64
		if width == 0 {
			s.BollingerPosition = null.FloatFrom(0)
		} else {
			s.BollingerPosition = null.FloatFrom((r.Bar.Close - r.BBLower.Float64) / width)
		}
	}
	return s, true
}

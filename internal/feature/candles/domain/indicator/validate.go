package indicator

import (
	"errors"
	"fmt"

	"stock_dashboard/internal/feature/candles/domain/entity"
)

// ErrMalformedSeries is wrapped by every Validate failure.
var ErrMalformedSeries = errors.New("malformed bar series")

// Validate rejects input the pipeline would turn into silently wrong numbers:
// an empty series, dates that are not strictly increasing, a non-positive
// close, negative prices and negative volume.
func Validate(bars []entity.DailyBar) error {
	if len(bars) == 0 {
		return fmt.Errorf("%w: no bars", ErrMalformedSeries)
	}
	for i, b := range bars {
		if i > 0 && !b.Date.After(bars[i-1].Date) {
			return fmt.Errorf("%w: date %s at position %d does not follow %s",
				ErrMalformedSeries, b.Date.Format("2006-01-02"), i, bars[i-1].Date.Format("2006-01-02"))
		}
		if b.Close <= 0 {
			return fmt.Errorf("%w: non-positive close on %s", ErrMalformedSeries, b.Date.Format("2006-01-02"))
		}
		if b.Open < 0 || b.High < 0 || b.Low < 0 {
			return fmt.Errorf("%w: negative price on %s", ErrMalformedSeries, b.Date.Format("2006-01-02"))
		}
		if b.Volume < 0 {
			return fmt.Errorf("%w: negative volume on %s", ErrMalformedSeries, b.Date.Format("2006-01-02"))
		}
	}
	return nil
}

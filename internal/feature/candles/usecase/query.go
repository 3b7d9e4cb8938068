package usecase

import (
	"fmt"
	"strings"
	"time"

	"stock_dashboard/internal/feature/candles/domain/entity"
)

// Query は1銘柄の日足取得条件です。
// From/To のどちらかが設定されている場合は Period より優先されます。
type Query struct {
	Symbol string
	Period entity.Period
	From   time.Time
	To     time.Time
}

// resolve は銘柄コードを正規化し、取得する日付範囲を決定します。
func (q Query) resolve(now time.Time) (symbol string, from, to time.Time, err error) {
	symbol = strings.ToUpper(strings.TrimSpace(q.Symbol))
	if symbol == "" {
		return "", time.Time{}, time.Time{}, ErrSymbolRequired
	}

	if !q.From.IsZero() || !q.To.IsZero() {
		if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
			return "", time.Time{}, time.Time{}, fmt.Errorf("%w: %s > %s",
				ErrInvalidRange, q.From.Format("2006-01-02"), q.To.Format("2006-01-02"))
		}
		return symbol, q.From, q.To, nil
	}

	p := q.Period
	if p == "" {
		p = entity.DefaultPeriod
	}
	from, to = p.Range(now)
	return symbol, from, to, nil
}

package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guregu/null/v6"
	"gorm.io/gorm"

	"stock_dashboard/internal/feature/candles/domain/entity"
	"stock_dashboard/internal/feature/candles/usecase"
)

const dateLayout = "2006-01-02"

// dateLayouts は stock_data.date に現れる書式です。
// TIMESTAMP 宣言の列はドライバが time.Time に変換するため RFC3339 文字列として届きます。
var dateLayouts = []string{
	dateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

type barSQLite struct {
	db *gorm.DB
}

var _ usecase.BarRepository = (*barSQLite)(nil)

// NewBarRepository は stock_data テーブルを読む BarRepository を生成します。
func NewBarRepository(db *gorm.DB) *barSQLite {
	return &barSQLite{db: db}
}

// BarModel は stock_data テーブルの1行です。価格列は NULL を含み得ます。
type BarModel struct {
	Symbol string     `gorm:"column:symbol;size:32;not null;index:idx_stock_data_symbol_date,priority:1"`
	Date   string     `gorm:"column:date;not null;index:idx_stock_data_symbol_date,priority:2"`
	Open   null.Float `gorm:"column:open_price"`
	High   null.Float `gorm:"column:high_price"`
	Low    null.Float `gorm:"column:low_price"`
	Close  null.Float `gorm:"column:close_price"`
	Volume null.Int   `gorm:"column:volume"`
}

func (BarModel) TableName() string {
	return "stock_data"
}

// FindRange は symbol の日足を日付昇順で返します。
// from/to はどちらも日付単位で両端を含み、ゼロ値は無制限を意味します。
// 終値が NULL の行は描画できないため除外します。
func (r *barSQLite) FindRange(ctx context.Context, symbol string, from, to time.Time) ([]entity.DailyBar, error) {
	q := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("date ASC")
	if !from.IsZero() {
		q = q.Where("date >= ?", from.Format(dateLayout))
	}
	if !to.IsZero() {
		// "2024-01-31 00:00:00" は "2024-01-31" より辞書順で大きいため翌日未満で比較する
		q = q.Where("date < ?", to.AddDate(0, 0, 1).Format(dateLayout))
	}

	var rows []BarModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find bars for %s: %w", symbol, err)
	}

	out := make([]entity.DailyBar, 0, len(rows))
	for _, m := range rows {
		if !m.Close.Valid {
			continue
		}
		d, err := parseDate(m.Date)
		if err != nil {
			return nil, fmt.Errorf("bar %s: %w", symbol, err)
		}
		out = append(out, entity.DailyBar{
			Symbol: m.Symbol,
			Date:   d,
			Open:   m.Open.ValueOrZero(),
			High:   m.High.ValueOrZero(),
			Low:    m.Low.ValueOrZero(),
			Close:  m.Close.Float64,
			Volume: m.Volume.ValueOrZero(),
		})
	}
	return out, nil
}

// parseDate は日付文字列を UTC の0時に正規化します。
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q", s)
}

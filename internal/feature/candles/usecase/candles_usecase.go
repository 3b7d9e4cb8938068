// Package usecase はローソク足データとテクニカル分析のビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"stock_dashboard/internal/feature/candles/domain/entity"
)

// BarRepository は日足データの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type BarRepository interface {
	// FindRange は from〜to（両端含む、ゼロ値は無制限）の日足を日付昇順で返します。
	FindRange(ctx context.Context, symbol string, from, to time.Time) ([]entity.DailyBar, error)
}

// candlesUsecase はローソク足データ操作のユースケースを定義します。
type candlesUsecase struct {
	bars BarRepository
	now  func() time.Time
}

// NewCandlesUsecase はcandlesUsecaseの新しいインスタンスを生成します。
func NewCandlesUsecase(bars BarRepository, opts ...Option) *candlesUsecase {
	o := applyOptions(opts)
	return &candlesUsecase{bars: bars, now: o.now}
}

// GetCandles は指定された銘柄と期間の日足を日付昇順で取得します。
// 該当データが無い場合は空のスライスを返します。
func (cu *candlesUsecase) GetCandles(ctx context.Context, q Query) ([]entity.DailyBar, error) {
	symbol, from, to, err := q.resolve(cu.now())
	if err != nil {
		return nil, err
	}

	bs, err := cu.bars.FindRange(ctx, symbol, from, to)
	if err != nil {
		return nil, err
	}

	return bs, nil
}

package usecase

import (
	"context"
	"log/slog"
	"time"

	"stock_dashboard/internal/feature/candles/domain/indicator"
)

// PipelineObserver はインジケーター計算の所要時間を受け取ります。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PipelineObserver interface {
	ObservePipeline(bars int, d time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObservePipeline(int, time.Duration) {}

// Analysis は1銘柄・1期間のテクニカル分析結果です。
type Analysis struct {
	Symbol  string
	From    time.Time // ゼロ値は無制限
	To      time.Time // ゼロ値は無制限
	Rows    []indicator.Row
	Summary indicator.Summary
	Latest  indicator.Snapshot
}

// AnalysisUsecase は日足を取得し、インジケーターとパフォーマンス統計を計算します。
type AnalysisUsecase struct {
	bars     BarRepository
	cfg      indicator.Config
	now      func() time.Time
	observer PipelineObserver
}

// NewAnalysisUsecase は新しい AnalysisUsecase を作成します。
func NewAnalysisUsecase(bars BarRepository, cfg indicator.Config, opts ...Option) *AnalysisUsecase {
	o := applyOptions(opts)
	return &AnalysisUsecase{bars: bars, cfg: cfg, now: o.now, observer: o.observer}
}

// Analyze は Query の銘柄・期間についてインジケーター行、統計、最新スナップショットを返します。
// データが無い場合は ErrNoBars、系列が不正な場合は indicator.ErrMalformedSeries を返します。
func (u *AnalysisUsecase) Analyze(ctx context.Context, q Query) (*Analysis, error) {
	symbol, from, to, err := q.resolve(u.now())
	if err != nil {
		return nil, err
	}

	bars, err := u.bars.FindRange(ctx, symbol, from, to)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, ErrNoBars
	}
	if err := indicator.Validate(bars); err != nil {
		slog.WarnContext(ctx, "rejected bar series", "symbol", symbol, "error", err)
		return nil, err
	}

	start := time.Now()
	rows := indicator.Compute(bars, u.cfg)
	summary := indicator.Summarize(indicator.Closes(bars))
	latest, _ := indicator.Latest(rows, u.deviationWindow())
	u.observer.ObservePipeline(len(bars), time.Since(start))

	return &Analysis{
		Symbol:  symbol,
		From:    from,
		To:      to,
		Rows:    rows,
		Summary: summary,
		Latest:  latest,
	}, nil
}

// deviationWindow は乖離率に使うSMAの期間で、SMAWindows の先頭（既定では20日）です。
func (u *AnalysisUsecase) deviationWindow() int {
	if len(u.cfg.SMAWindows) == 0 {
		return 0
	}
	return u.cfg.SMAWindows[0]
}

package usecase

import "time"

// Option はユースケースの任意設定です。
type Option func(*options)

type options struct {
	now      func() time.Time
	observer PipelineObserver
}

// WithClock は期間の基準となる現在時刻の取得関数を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithObserver はパイプライン実行時間の記録先を設定します。
func WithObserver(obs PipelineObserver) Option {
	return func(o *options) { o.observer = obs }
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now, observer: noopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

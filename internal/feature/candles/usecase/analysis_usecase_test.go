package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/candles/domain/entity"
	"stock_dashboard/internal/feature/candles/domain/indicator"
	"stock_dashboard/internal/feature/candles/usecase"
)

// mockObserver はPipelineObserverのモック実装です。
type mockObserver struct {
	calls int
	bars  int
}

func (m *mockObserver) ObservePipeline(bars int, _ time.Duration) {
	m.calls++
	m.bars = bars
}

// risingBars は start から1日ずつ終値が1ずつ上がる n 本の日足を生成します。
func risingBars(symbol string, start time.Time, n int) []entity.DailyBar {
	bars := make([]entity.DailyBar, n)
	for i := range bars {
		c := 100 + float64(i)
		bars[i] = entity.DailyBar{
			Symbol: symbol,
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func TestAnalysisUsecase_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows summary and latest snapshot", func(t *testing.T) {
		bars := risingBars("AAPL", date(2024, 1, 1), 30)
		repo := &mockBarRepository{
			FindRangeFunc: func(ctx context.Context, symbol string, from, to time.Time) ([]entity.DailyBar, error) {
				assert.Equal(t, "AAPL", symbol)
				assert.Equal(t, date(2024, 4, 1), from)
				assert.Equal(t, date(2024, 6, 30), to)
				return bars, nil
			},
		}
		obs := &mockObserver{}
		uc := usecase.NewAnalysisUsecase(repo, indicator.DefaultConfig(),
			usecase.WithClock(clock), usecase.WithObserver(obs))

		got, err := uc.Analyze(ctx, usecase.Query{Symbol: "aapl", Period: entity.Period3M})
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, "AAPL", got.Symbol)
		assert.Len(t, got.Rows, len(bars))
		assert.Equal(t, 29, got.Summary.Observations) // 先頭バーは日次リターンなし
		assert.InDelta(t, 129.0/100.0-1, got.Summary.TotalReturn, 1e-12)
		assert.Equal(t, 0.0, got.Summary.MaxDrawdown)

		assert.Equal(t, bars[29].Date, got.Latest.Date)
		assert.Equal(t, 129.0, got.Latest.Close)
		// 単調増加なので RSI は 100
		require.True(t, got.Latest.RSI.Valid)
		assert.InDelta(t, 100.0, got.Latest.RSI.Float64, 1e-9)
		// SMA20 = 119.5 の平均に対する乖離率
		require.True(t, got.Latest.SMADeviation.Valid)
		assert.InDelta(t, (129-119.5)/119.5, got.Latest.SMADeviation.Float64, 1e-12)

		assert.Equal(t, 1, obs.calls)
		assert.Equal(t, 30, obs.bars)
	})

	t.Run("success: short history leaves long indicators undefined", func(t *testing.T) {
		bars := risingBars("MSFT", date(2024, 6, 1), 5)
		repo := &mockBarRepository{
			FindRangeFunc: func(ctx context.Context, symbol string, from, to time.Time) ([]entity.DailyBar, error) {
				return bars, nil
			},
		}
		uc := usecase.NewAnalysisUsecase(repo, indicator.DefaultConfig(), usecase.WithClock(clock))

		got, err := uc.Analyze(ctx, usecase.Query{Symbol: "MSFT"})
		require.NoError(t, err)
		for _, r := range got.Rows {
			assert.False(t, r.SMA[200].Valid)
			assert.False(t, r.RSI.Valid)
			assert.False(t, r.BBMiddle.Valid)
		}
		assert.False(t, got.Latest.SMADeviation.Valid)
		assert.False(t, got.Latest.BollingerPosition.Valid)
	})

	t.Run("error: no bars", func(t *testing.T) {
		repo := &mockBarRepository{
			FindRangeFunc: func(ctx context.Context, symbol string, from, to time.Time) ([]entity.DailyBar, error) {
				return nil, nil
			},
		}
		obs := &mockObserver{}
		uc := usecase.NewAnalysisUsecase(repo, indicator.DefaultConfig(),
			usecase.WithClock(clock), usecase.WithObserver(obs))

		got, err := uc.Analyze(ctx, usecase.Query{Symbol: "ZZZZ"})
		assert.Nil(t, got)
		assert.ErrorIs(t, err, usecase.ErrNoBars)
		assert.Equal(t, 0, obs.calls)
	})

	t.Run("error: malformed series", func(t *testing.T) {
		bars := risingBars("AAPL", date(2024, 1, 1), 3)
		bars[2].Date = bars[1].Date
		repo := &mockBarRepository{
			FindRangeFunc: func(ctx context.Context, symbol string, from, to time.Time) ([]entity.DailyBar, error) {
				return bars, nil
			},
		}
		uc := usecase.NewAnalysisUsecase(repo, indicator.DefaultConfig(), usecase.WithClock(clock))

		_, err := uc.Analyze(ctx, usecase.Query{Symbol: "AAPL"})
		assert.ErrorIs(t, err, indicator.ErrMalformedSeries)
	})

	t.Run("error: repository failure is propagated", func(t *testing.T) {
		repo := &mockBarRepository{
			FindRangeFunc: func(ctx context.Context, symbol string, from, to time.Time) ([]entity.DailyBar, error) {
				return nil, ErrDB
			},
		}
		uc := usecase.NewAnalysisUsecase(repo, indicator.DefaultConfig(), usecase.WithClock(clock))

		_, err := uc.Analyze(ctx, usecase.Query{Symbol: "AAPL"})
		assert.True(t, errors.Is(err, ErrDB))
	})

	t.Run("error: empty symbol skips repository", func(t *testing.T) {
		repo := &mockBarRepository{}
		uc := usecase.NewAnalysisUsecase(repo, indicator.DefaultConfig())

		_, err := uc.Analyze(ctx, usecase.Query{})
		assert.ErrorIs(t, err, usecase.ErrSymbolRequired)
		assert.Equal(t, 0, repo.FindRangeCalls)
	})
}

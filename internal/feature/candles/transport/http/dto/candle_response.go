// Package dto はcandlesフィーチャーのHTTPレスポンスDTOを定義します。
package dto

import "github.com/guregu/null/v6"

// CandleResponse はロウソク足データのレスポンスDTOです。
type CandleResponse struct {
	Time   string  `json:"time"`   // 日付
	Open   float64 `json:"open"`   // 始値
	High   float64 `json:"high"`   // 高値
	Low    float64 `json:"low"`    // 安値
	Close  float64 `json:"close"`  // 終値
	Volume int64   `json:"volume"` // 出来高
}

// IndicatorRow は1日分の日足と派生インジケーターです。
// 計算に必要な履歴が足りない値は null になります。
type IndicatorRow struct {
	CandleResponse

	SMA       map[int]null.Float `json:"sma"` // 期間 -> 値
	VolumeSMA null.Float         `json:"volume_sma"`
	EMAFast   float64            `json:"ema_fast"`
	EMASlow   float64            `json:"ema_slow"`

	MACD          float64 `json:"macd"`
	MACDSignal    float64 `json:"macd_signal"`
	MACDHistogram float64 `json:"macd_histogram"`

	RSI null.Float `json:"rsi"`

	BBMiddle null.Float `json:"bb_middle"`
	BBUpper  null.Float `json:"bb_upper"`
	BBLower  null.Float `json:"bb_lower"`

	DailyReturn      null.Float `json:"daily_return"`
	CumulativeReturn float64    `json:"cumulative_return"`
}

// SummaryResponse は期間全体のパフォーマンス統計です。比率はすべて小数表記です。
type SummaryResponse struct {
	TotalReturn          float64 `json:"total_return"`
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	SharpeRatio          float64 `json:"sharpe_ratio"`
	MaxDrawdown          float64 `json:"max_drawdown"`
	Observations         int     `json:"observations"`
}

// LatestResponse は最新日のテクニカル指標です。
type LatestResponse struct {
	Time              string     `json:"time"`
	Close             float64    `json:"close"`
	RSI               null.Float `json:"rsi"`
	MACD              float64    `json:"macd"`
	SMADeviation      null.Float `json:"sma_deviation"`
	BollingerPosition null.Float `json:"bollinger_position"`
}

// AnalysisResponse は /api/analysis のレスポンスです。
type AnalysisResponse struct {
	Symbol  string          `json:"symbol"`
	From    null.String     `json:"from"` // 無制限の場合は null
	To      null.String     `json:"to"`
	Rows    []IndicatorRow  `json:"rows"`
	Summary SummaryResponse `json:"summary"`
	Latest  LatestResponse  `json:"latest"`
}

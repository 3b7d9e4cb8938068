// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guregu/null/v6"

	"stock_dashboard/internal/feature/candles/domain/entity"
	"stock_dashboard/internal/feature/candles/domain/indicator"
	"stock_dashboard/internal/feature/candles/transport/http/dto"
	"stock_dashboard/internal/feature/candles/usecase"
)

const dateLayout = "2006-01-02"

// errInvalidDate は from/to クエリが YYYY-MM-DD でない場合のエラーです。
var errInvalidDate = errors.New("invalid date")

// CandlesUsecase はローソク足データ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CandlesUsecase interface {
	GetCandles(ctx context.Context, q usecase.Query) ([]entity.DailyBar, error)
}

// AnalysisUsecase はテクニカル分析のユースケースインターフェースです。
type AnalysisUsecase interface {
	Analyze(ctx context.Context, q usecase.Query) (*usecase.Analysis, error)
}

// CandlesHandler はローソク足と分析結果のHTTPリクエストを処理します。
type CandlesHandler struct {
	candles  CandlesUsecase
	analysis AnalysisUsecase
}

// NewCandlesHandler は指定されたusecaseでCandlesHandlerの新しいインスタンスを生成します。
func NewCandlesHandler(candles CandlesUsecase, analysis AnalysisUsecase) *CandlesHandler {
	return &CandlesHandler{candles: candles, analysis: analysis}
}

// GetCandlesHandler は銘柄コードと期間を受け取り、日足データをJSONで返します。
//
// エンドポイント例:
// GET /api/candles/:symbol?period=6m
// GET /api/candles/:symbol?from=2024-01-01&to=2024-03-31
func (h *CandlesHandler) GetCandlesHandler(c *gin.Context) {
	q, err := parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bars, err := h.candles.GetCandles(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.CandleResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, toCandle(b))
	}
	c.JSON(http.StatusOK, out)
}

// GetAnalysisHandler は日足にインジケーターと統計を付与してJSONで返します。
//
// エンドポイント例:
// GET /api/analysis/:symbol?period=1y
func (h *CandlesHandler) GetAnalysisHandler(c *gin.Context) {
	q, err := parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.analysis.Analyze(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAnalysis(a))
}

// parseQuery はパスとクエリ文字列から usecase.Query を組み立てます。
func parseQuery(c *gin.Context) (usecase.Query, error) {
	period, err := entity.ParsePeriod(c.Query("period"))
	if err != nil {
		return usecase.Query{}, err
	}
	from, err := parseDate(c.Query("from"))
	if err != nil {
		return usecase.Query{}, err
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		return usecase.Query{}, err
	}
	return usecase.Query{Symbol: c.Param("symbol"), Period: period, From: from, To: to}, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, s)
	}
	return t, nil
}

// writeError はドメインエラーをHTTPステータスに変換します。
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrSymbolRequired),
		errors.Is(err, usecase.ErrInvalidRange),
		errors.Is(err, entity.ErrUnsupportedPeriod):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrNoBars):
		status = http.StatusNotFound
	case errors.Is(err, indicator.ErrMalformedSeries):
		status = http.StatusUnprocessableEntity
	default:
		slog.ErrorContext(c.Request.Context(), "candles request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func toCandle(b entity.DailyBar) dto.CandleResponse {
	return dto.CandleResponse{
		Time:   b.Date.UTC().Format(dateLayout),
		Open:   b.Open,
		High:   b.High,
		Low:    b.Low,
		Close:  b.Close,
		Volume: b.Volume,
	}
}

func formatDate(t time.Time) null.String {
	if t.IsZero() {
		return null.String{}
	}
	return null.StringFrom(t.Format(dateLayout))
}

func toAnalysis(a *usecase.Analysis) dto.AnalysisResponse {
	rows := make([]dto.IndicatorRow, 0, len(a.Rows))
	for _, r := range a.Rows {
		rows = append(rows, dto.IndicatorRow{
			CandleResponse:   toCandle(r.Bar),
			SMA:              r.SMA,
			VolumeSMA:        r.VolumeSMA,
			EMAFast:          r.EMAFast,
			EMASlow:          r.EMASlow,
			MACD:             r.MACD,
			MACDSignal:       r.MACDSignal,
			MACDHistogram:    r.MACDHistogram,
			RSI:              r.RSI,
			BBMiddle:         r.BBMiddle,
			BBUpper:          r.BBUpper,
			BBLower:          r.BBLower,
			DailyReturn:      r.DailyReturn,
			CumulativeReturn: r.CumulativeReturn,
		})
	}

	return dto.AnalysisResponse{
		Symbol: a.Symbol,
		From:   formatDate(a.From),
		To:     formatDate(a.To),
		Rows:   rows,
		Summary: dto.SummaryResponse{
			TotalReturn:          a.Summary.TotalReturn,
			AnnualizedVolatility: a.Summary.AnnualizedVolatility,
			SharpeRatio:          a.Summary.SharpeRatio,
			MaxDrawdown:          a.Summary.MaxDrawdown,
			Observations:         a.Summary.Observations,
		},
		Latest: dto.LatestResponse{
			Time:              formatDate(a.Latest.Date).String,
			Close:             a.Latest.Close,
			RSI:               a.Latest.RSI,
			MACD:              a.Latest.MACD,
			SMADeviation:      a.Latest.SMADeviation,
			BollingerPosition: a.Latest.BollingerPosition,
		},
	}
}

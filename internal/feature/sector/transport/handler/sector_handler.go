// Package handler はsectorフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/sector/domain/entity"
	"stock_dashboard/internal/feature/sector/transport/http/dto"
	"stock_dashboard/internal/feature/sector/usecase"
)

// SectorUsecase はセクター比較のユースケースインターフェースです。
type SectorUsecase interface {
	Compare(ctx context.Context, sector, metric string) ([]entity.Comparison, error)
}

// SectorHandler はセクター比較のHTTPリクエストを処理します。
type SectorHandler struct {
	uc SectorUsecase
}

// NewSectorHandler は新しい SectorHandler を作成します。
func NewSectorHandler(uc SectorUsecase) *SectorHandler {
	return &SectorHandler{uc: uc}
}

// Comparison はセクター内の会社を指標ごとにランキングして返します。
//
// エンドポイント例:
// GET /api/sectors/:sector/comparison?metric=trailing_pe
func (h *SectorHandler) Comparison(c *gin.Context) {
	comparisons, err := h.uc.Compare(c.Request.Context(), c.Param("sector"), c.Query("metric"))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUnsupportedMetric), errors.Is(err, usecase.ErrSectorRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.ErrorContext(c.Request.Context(), "sector comparison failed", "sector", c.Param("sector"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	out := make([]dto.ComparisonResponse, 0, len(comparisons))
	for _, cmp := range comparisons {
		entries := make([]dto.EntryItem, 0, len(cmp.Entries))
		for _, e := range cmp.Entries {
			entries = append(entries, dto.EntryItem{Symbol: e.Symbol, Name: e.Name, Value: e.Value})
		}
		out = append(out, dto.ComparisonResponse{Sector: cmp.Sector, Metric: string(cmp.Metric), Entries: entries})
	}
	c.JSON(http.StatusOK, out)
}

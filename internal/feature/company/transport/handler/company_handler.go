// Package handler はcompanyフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/company/domain/entity"
	"stock_dashboard/internal/feature/company/transport/http/dto"
	"stock_dashboard/internal/feature/company/usecase"
)

// CompanyUsecase は会社情報に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CompanyUsecase interface {
	ListCompanies(ctx context.Context) ([]entity.Company, error)
	ListSectors(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, symbol string) (*entity.Profile, error)
}

// CompanyHandler は会社情報に関するHTTPリクエストを処理します。
type CompanyHandler struct {
	uc   CompanyUsecase
	unit entity.DividendUnit
}

// NewCompanyHandler は新しい CompanyHandler を作成します。
// unit はスナップショットの dividend_yield の単位です。
func NewCompanyHandler(uc CompanyUsecase, unit entity.DividendUnit) *CompanyHandler {
	return &CompanyHandler{uc: uc, unit: unit}
}

// List は銘柄選択用の会社一覧を返します。
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.uc.ListCompanies(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	out := make([]dto.CompanyItem, 0, len(companies))
	for _, co := range companies {
		out = append(out, dto.CompanyItem{Symbol: co.Symbol, Name: co.Name, Sector: co.Sector})
	}
	c.JSON(http.StatusOK, out)
}

// Sectors はセクター名の一覧を返します。
func (h *CompanyHandler) Sectors(c *gin.Context) {
	sectors, err := h.uc.ListSectors(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	if sectors == nil {
		sectors = []string{}
	}
	c.JSON(http.StatusOK, sectors)
}

// Profile は会社情報・財務指標・表示用カードを返します。
// 銘柄が存在しない場合は404 Not Foundを返します。
func (h *CompanyHandler) Profile(c *gin.Context) {
	p, err := h.uc.GetProfile(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(p, h.unit))
}

func internalError(c *gin.Context, err error) {
	slog.ErrorContext(c.Request.Context(), "company request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

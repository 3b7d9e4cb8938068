// Package router wires HTTP routes to handlers.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	candleshandler "stock_dashboard/internal/feature/candles/transport/handler"
	companyhandler "stock_dashboard/internal/feature/company/transport/handler"
	sectorhandler "stock_dashboard/internal/feature/sector/transport/handler"
	"stock_dashboard/internal/platform/http/middleware"
	"stock_dashboard/internal/platform/metrics"
	"stock_dashboard/internal/platform/web"
)

// Handlers groups the feature handlers mounted under /api.
type Handlers struct {
	Candles *candleshandler.CandlesHandler
	Company *companyhandler.CompanyHandler
	Sector  *sectorhandler.SectorHandler
	Health  gin.HandlerFunc
}

// NewRouter builds the engine with middleware, the dashboard page and the JSON API.
func NewRouter(h Handlers, m *metrics.Metrics, allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		m.Middleware(),
		cors.New(cors.Config{
			AllowOrigins:  allowOrigins,
			AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader},
		}),
	)

	// 導通確認用
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// ダッシュボード本体
	r.GET("/", web.Index)

	api := r.Group("/api")
	{
		api.GET("/companies", h.Company.List)
		api.GET("/companies/:symbol", h.Company.Profile)
		api.GET("/sectors", h.Company.Sectors)
		api.GET("/sectors/:sector/comparison", h.Sector.Comparison)
		api.GET("/candles/:symbol", h.Candles.GetCandlesHandler)
		api.GET("/analysis/:symbol", h.Candles.GetAnalysisHandler)
	}

	return r
}

package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	candleadapters "stock_dashboard/internal/feature/candles/adapters"
	"stock_dashboard/internal/feature/candles/domain/indicator"
	candleshandler "stock_dashboard/internal/feature/candles/transport/handler"
	candlesusecase "stock_dashboard/internal/feature/candles/usecase"
	companyadapters "stock_dashboard/internal/feature/company/adapters"
	companyentity "stock_dashboard/internal/feature/company/domain/entity"
	companyhandler "stock_dashboard/internal/feature/company/transport/handler"
	companyusecase "stock_dashboard/internal/feature/company/usecase"
	sectoradapters "stock_dashboard/internal/feature/sector/adapters"
	sectorhandler "stock_dashboard/internal/feature/sector/transport/handler"
	sectorusecase "stock_dashboard/internal/feature/sector/usecase"
	healthhandler "stock_dashboard/internal/platform/http/handler"
	"stock_dashboard/internal/platform/metrics"
)

// setupEngine は実際のリポジトリとユースケースをインメモリDBで組み立てます。
func setupEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&candleadapters.BarModel{}, &companyadapters.CompanyModel{}, &companyadapters.FinancialModel{}))

	require.NoError(t, db.Create(&companyadapters.CompanyModel{
		Symbol: "AAPL", CompanyName: "Apple Inc.", Sector: null.StringFrom("Technology"),
		MarketCap: null.FloatFrom(3e12), Employees: null.IntFrom(161000),
	}).Error)
	require.NoError(t, db.Create(&companyadapters.FinancialModel{
		Symbol: "AAPL", MarketCap: null.FloatFrom(3e12), TrailingPE: null.FloatFrom(30),
	}).Error)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 40; i++ {
		c := 100 + float64(i%7)
		require.NoError(t, db.Create(&candleadapters.BarModel{
			Symbol: "AAPL",
			Date:   start.AddDate(0, 0, i).Format("2006-01-02"),
			Open:   null.FloatFrom(c), High: null.FloatFrom(c + 1), Low: null.FloatFrom(c - 1), Close: null.FloatFrom(c),
			Volume: null.IntFrom(int64(1000 + i)),
		}).Error)
	}

	bars := candleadapters.NewBarRepository(db)
	m := metrics.NewMetrics()
	h := Handlers{
		Candles: candleshandler.NewCandlesHandler(
			candlesusecase.NewCandlesUsecase(bars),
			candlesusecase.NewAnalysisUsecase(bars, indicator.DefaultConfig(), candlesusecase.WithObserver(m)),
		),
		Company: companyhandler.NewCompanyHandler(companyusecase.NewCompanyUsecase(companyadapters.NewCompanyRepository(db)), companyentity.DividendFraction),
		Sector:  sectorhandler.NewSectorHandler(sectorusecase.NewSectorUsecase(sectoradapters.NewSectorRepository(db))),
		Health:  healthhandler.NewHealth(sqlDB),
	}
	return NewRouter(h, m, []string{"http://localhost:8513"})
}

func get(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestRouter_Routes(t *testing.T) {
	r := setupEngine(t)

	tests := []struct {
		url    string
		status int
	}{
		{"/healthz", http.StatusOK},
		{"/", http.StatusOK},
		{"/api/companies", http.StatusOK},
		{"/api/sectors", http.StatusOK},
		{"/api/companies/AAPL", http.StatusOK},
		{"/api/companies/ZZZZ", http.StatusNotFound},
		{"/api/candles/AAPL?period=all", http.StatusOK},
		{"/api/candles/AAPL?period=7d", http.StatusBadRequest},
		{"/api/analysis/AAPL?period=all", http.StatusOK},
		{"/api/analysis/ZZZZ?period=all", http.StatusNotFound},
		{"/api/analysis/AAPL?from=2024-02-01&to=2024-01-01", http.StatusBadRequest},
		{"/api/sectors/Technology/comparison", http.StatusOK},
		{"/api/sectors/Technology/comparison?metric=eps", http.StatusBadRequest},
		{"/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			w := get(r, tt.url)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_AnalysisEndToEnd(t *testing.T) {
	r := setupEngine(t)

	w := get(r, "/api/analysis/aapl?from=2024-01-01&to=2024-01-31")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Symbol string                   `json:"symbol"`
		Rows   []map[string]interface{} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "AAPL", body.Symbol)
	require.Len(t, body.Rows, 31)
	assert.Nil(t, body.Rows[0]["daily_return"])
	assert.Nil(t, body.Rows[18]["sma"].(map[string]interface{})["20"])
	assert.NotNil(t, body.Rows[19]["sma"].(map[string]interface{})["20"])

	m := get(r, "/metrics")
	assert.Contains(t, m.Body.String(), "dashboard_indicator_pipeline_duration_seconds_count 1")
	assert.Contains(t, m.Body.String(), fmt.Sprintf(`dashboard_http_requests_total{method="GET",route="/api/analysis/:symbol",status="%d"} 1`, http.StatusOK))
}

func TestRouter_SectorComparisonAllMetrics(t *testing.T) {
	r := setupEngine(t)

	w := get(r, "/api/sectors/Technology/comparison")
	require.Equal(t, http.StatusOK, w.Code)

	var body []struct {
		Metric  string `json:"metric"`
		Entries []struct {
			Symbol string `json:"symbol"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 5)
	assert.Equal(t, "market_cap", body[0].Metric)
	assert.Len(t, body[0].Entries, 1)
	assert.Equal(t, "trailing_pe", body[1].Metric)
	assert.Len(t, body[1].Entries, 1)
	assert.Equal(t, "dividend_yield", body[4].Metric)
	assert.Empty(t, body[4].Entries)
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/company/domain/entity"
	"stock_dashboard/internal/feature/company/usecase"
)

// mockCompanyUsecase はCompanyUsecaseインターフェースのモック実装です。
type mockCompanyUsecase struct {
	ListCompaniesFunc func(ctx context.Context) ([]entity.Company, error)
	ListSectorsFunc   func(ctx context.Context) ([]string, error)
	GetProfileFunc    func(ctx context.Context, symbol string) (*entity.Profile, error)
}

func (m *mockCompanyUsecase) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	if m.ListCompaniesFunc != nil {
		return m.ListCompaniesFunc(ctx)
	}
	return nil, nil
}

func (m *mockCompanyUsecase) ListSectors(ctx context.Context) ([]string, error) {
	if m.ListSectorsFunc != nil {
		return m.ListSectorsFunc(ctx)
	}
	return nil, nil
}

func (m *mockCompanyUsecase) GetProfile(ctx context.Context, symbol string) (*entity.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, symbol)
	}
	return nil, nil
}

func serve(h *CompanyHandler, url string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/api/companies", h.List)
	r.GET("/api/companies/:symbol", h.Profile)
	r.GET("/api/sectors", h.Sectors)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

// TestNewCompanyHandler はNewCompanyHandlerコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewCompanyHandler(t *testing.T) {
	t.Parallel()

	h := NewCompanyHandler(&mockCompanyUsecase{}, entity.DividendPercent)

	assert.NotNil(t, h.uc, "usecase should not be nil")
	assert.Equal(t, entity.DividendPercent, h.unit)
}

// TestCompanyHandler_List はListハンドラーの各種シナリオをテーブル駆動テストで検証します。
func TestCompanyHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockList       func(ctx context.Context) ([]entity.Company, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns list of companies",
			mockList: func(ctx context.Context) ([]entity.Company, error) {
				return []entity.Company{
					{Symbol: "AAPL", Name: "Apple Inc.", Sector: null.StringFrom("Technology")},
					{Symbol: "XYZ", Name: "No Sector"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"symbol":"AAPL","name":"Apple Inc.","sector":"Technology"},{"symbol":"XYZ","name":"No Sector","sector":null}]`,
		},
		{
			name: "success: returns nil from usecase",
			mockList: func(ctx context.Context) ([]entity.Company, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "failure: usecase returns error",
			mockList: func(ctx context.Context) ([]entity.Company, error) {
				return nil, errors.New("database connection failed")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"database connection failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCompanyHandler(&mockCompanyUsecase{ListCompaniesFunc: tt.mockList}, entity.DividendFraction)
			w := serve(h, "/api/companies")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestCompanyHandler_Sectors はセクター一覧のレスポンスを検証します。
func TestCompanyHandler_Sectors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		h := NewCompanyHandler(&mockCompanyUsecase{
			ListSectorsFunc: func(ctx context.Context) ([]string, error) {
				return []string{"Energy", "Technology"}, nil
			},
		}, entity.DividendFraction)
		w := serve(h, "/api/sectors")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `["Energy","Technology"]`, w.Body.String())
	})

	t.Run("success: empty", func(t *testing.T) {
		w := serve(NewCompanyHandler(&mockCompanyUsecase{}, entity.DividendFraction), "/api/sectors")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

// TestCompanyHandler_Profile はプロフィールの取得とエラー時のステータスを検証します。
func TestCompanyHandler_Profile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: cards use configured dividend unit", func(t *testing.T) {
		h := NewCompanyHandler(&mockCompanyUsecase{
			GetProfileFunc: func(ctx context.Context, symbol string) (*entity.Profile, error) {
				assert.Equal(t, "AAPL", symbol)
				return &entity.Profile{
					Company:      entity.Company{Symbol: "AAPL", Name: "Apple Inc."},
					Fundamentals: &entity.Fundamentals{Symbol: "AAPL", DividendYield: null.FloatFrom(0.52)},
				}, nil
			},
		}, entity.DividendPercent)
		w := serve(h, "/api/companies/AAPL")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Symbol       string         `json:"symbol"`
			Fundamentals map[string]any `json:"fundamentals"`
			Cards        []struct {
				Key   string `json:"key"`
				Value string `json:"value"`
			} `json:"cards"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "AAPL", body.Symbol)
		assert.Equal(t, 0.52, body.Fundamentals["dividend_yield"])
		assert.Nil(t, body.Fundamentals["trailing_pe"])

		values := map[string]string{}
		for _, c := range body.Cards {
			values[c.Key] = c.Value
		}
		assert.Equal(t, "0.52%", values["dividend_yield"])
		assert.Equal(t, "N/A", values["trailing_pe"])
	})

	t.Run("failure: not found", func(t *testing.T) {
		h := NewCompanyHandler(&mockCompanyUsecase{
			GetProfileFunc: func(ctx context.Context, symbol string) (*entity.Profile, error) {
				return nil, usecase.ErrCompanyNotFound
			},
		}, entity.DividendFraction)
		w := serve(h, "/api/companies/ZZZZ")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"company not found"}`, w.Body.String())
	})

	t.Run("failure: internal error", func(t *testing.T) {
		h := NewCompanyHandler(&mockCompanyUsecase{
			GetProfileFunc: func(ctx context.Context, symbol string) (*entity.Profile, error) {
				return nil, errors.New("disk I/O error")
			},
		}, entity.DividendFraction)
		w := serve(h, "/api/companies/AAPL")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

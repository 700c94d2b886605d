package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/domain/entity"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/transport/handler"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/usecase"
)

// mockStocksUsecase is a test double for the handler's usecase interface.
type mockStocksUsecase struct {
	analyzeFn    func(ctx context.Context, symbol string) (entity.Analysis, error)
	quoteFn      func(ctx context.Context, symbol string) (entity.Quote, bool, error)
	batchQuoteFn func(ctx context.Context, symbols []string) (map[string]entity.Quote, usecase.BatchStatus)
}

func (m *mockStocksUsecase) Analyze(ctx context.Context, symbol string) (entity.Analysis, error) {
	return m.analyzeFn(ctx, symbol)
}

func (m *mockStocksUsecase) Quote(ctx context.Context, symbol string) (entity.Quote, bool, error) {
	return m.quoteFn(ctx, symbol)
}

func (m *mockStocksUsecase) BatchQuote(ctx context.Context, symbols []string) (map[string]entity.Quote, usecase.BatchStatus) {
	return m.batchQuoteFn(ctx, symbols)
}

func setupRouter(uc handler.StocksUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewStockHandler(uc)
	r := gin.New()
	r.GET("/stocks/quotes", h.GetBatchQuotes)
	r.GET("/stocks/:symbol/quote", h.GetQuote)
	r.GET("/stocks/:symbol/analysis", h.GetAnalysis)
	return r
}

func testAnalysis() entity.Analysis {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	return entity.Analysis{
		Symbol:      "AAPL",
		CompanyName: "Apple Inc",
		Quote: entity.Quote{
			Symbol: "AAPL", Price: 212.5, Change: 1.2, ChangePercent: 0.57, Timestamp: day,
		},
		Indicators: entity.IndicatorSet{
			ShortMA: 210.1, LongMA: 205.4, EMA: 211.3, RSI: 55.2,
			MACDLine: 1.5, MACDSignal: 1.35,
			BollingerUpper: 220.0, BollingerLower: 200.0,
			Support: 202.5, Resistance: 218.0,
		},
		Recommendation: entity.Recommendation{
			Verdict:   entity.VerdictHold,
			BuyScore:  3,
			SellScore: 3,
			Reasons:   []string{"Short-term MA is above long-term MA (uptrend)"},
			BuyPoints: []float64{200.0, 190.0}, SellPoints: []float64{220.0, 231.0},
		},
		History: []entity.Candle{
			{Date: day.AddDate(0, 0, -1), Open: 209, High: 212, Low: 208, Close: 211, Volume: 1000},
			{Date: day, Open: 211, High: 214, Low: 210, Close: 212.5, Volume: 1500},
		},
		IsDemoData: false,
	}
}

func TestStockHandler_GetAnalysis(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockStocksUsecase{
			analyzeFn: func(ctx context.Context, symbol string) (entity.Analysis, error) {
				assert.Equal(t, "AAPL", symbol)
				return testAnalysis(), nil
			},
		}
		router := setupRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/stocks/AAPL/analysis", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, "AAPL", body["ticker"])
		assert.Equal(t, "Apple Inc", body["company_name"])
		assert.Equal(t, 212.5, body["current_price"])
		assert.Equal(t, "hold", body["recommendation"])
		assert.Equal(t, []any{"2025-06-14", "2025-06-15"}, body["historical_dates"])
		assert.Equal(t, []any{211.0, 212.5}, body["historical_prices"])
		assert.NotContains(t, body, "is_demo_data", "false demo flag is omitted")
	})

	t.Run("invalid symbol yields 400", func(t *testing.T) {
		uc := &mockStocksUsecase{
			analyzeFn: func(ctx context.Context, symbol string) (entity.Analysis, error) {
				return entity.Analysis{}, usecase.ErrInvalidSymbol
			},
		}
		router := setupRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/stocks/bad!symbol/analysis", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"error"`)
	})

	t.Run("no data yields 502", func(t *testing.T) {
		uc := &mockStocksUsecase{
			analyzeFn: func(ctx context.Context, symbol string) (entity.Analysis, error) {
				return entity.Analysis{}, usecase.ErrNoData
			},
		}
		router := setupRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/stocks/AAPL/analysis", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestStockHandler_GetQuote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockStocksUsecase{
			quoteFn: func(ctx context.Context, symbol string) (entity.Quote, bool, error) {
				return entity.Quote{Symbol: "AAPL", Price: 212.5}, false, nil
			},
		}
		router := setupRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/stocks/AAPL/quote", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","ticker":"AAPL","price":212.5}`, w.Body.String())
	})

	t.Run("demo data flagged", func(t *testing.T) {
		uc := &mockStocksUsecase{
			quoteFn: func(ctx context.Context, symbol string) (entity.Quote, bool, error) {
				return entity.Quote{Symbol: "AAPL", Price: 99.9}, true, nil
			},
		}
		router := setupRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/stocks/AAPL/quote", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_demo_data":true`)
	})
}

func TestStockHandler_GetBatchQuotes(t *testing.T) {
	t.Run("partial resolution stays HTTP 200", func(t *testing.T) {
		uc := &mockStocksUsecase{
			batchQuoteFn: func(ctx context.Context, symbols []string) (map[string]entity.Quote, usecase.BatchStatus) {
				assert.Equal(t, []string{"AAPL", "MSFT", "ZZZZInvalid"}, symbols)
				return map[string]entity.Quote{
					"AAPL": {Symbol: "AAPL", Price: 212.5, Change: 1.2, ChangePercent: 0.57},
					"MSFT": {Symbol: "MSFT", Price: 455.1, Change: -2.1, ChangePercent: -0.46},
				}, usecase.BatchPartial
			},
		}
		router := setupRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/stocks/quotes?symbols=AAPL,MSFT,ZZZZInvalid", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Status string `json:"status"`
			Quotes map[string]struct {
				Price         float64 `json:"price"`
				Change        float64 `json:"change"`
				ChangePercent float64 `json:"change_percent"`
			} `json:"quotes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "partial", body.Status)
		assert.Len(t, body.Quotes, 2)
		assert.Equal(t, 212.5, body.Quotes["AAPL"].Price)
	})

	t.Run("missing symbols parameter yields 400", func(t *testing.T) {
		uc := &mockStocksUsecase{
			batchQuoteFn: func(ctx context.Context, symbols []string) (map[string]entity.Quote, usecase.BatchStatus) {
				t.Error("usecase must not be called without symbols")
				return nil, usecase.BatchError
			},
		}
		router := setupRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/stocks/quotes", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

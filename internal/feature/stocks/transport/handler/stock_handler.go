// Package handler provides the HTTP handlers for the stocks feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/domain/entity"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/transport/http/dto"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/usecase"
)

// StocksUsecase defines the analysis operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type StocksUsecase interface {
	Analyze(ctx context.Context, symbol string) (entity.Analysis, error)
	Quote(ctx context.Context, symbol string) (entity.Quote, bool, error)
	BatchQuote(ctx context.Context, symbols []string) (map[string]entity.Quote, usecase.BatchStatus)
}

// StockHandler handles HTTP requests for stock quotes and analysis.
type StockHandler struct {
	uc StocksUsecase
}

// NewStockHandler creates a StockHandler with the given usecase.
func NewStockHandler(uc StocksUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetAnalysis returns the full technical analysis for one ticker.
//
// GET /stocks/:symbol/analysis
func (h *StockHandler) GetAnalysis(c *gin.Context) {
	analysis, err := h.uc.Analyze(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		status, msg := mapError(err)
		c.JSON(status, dto.NewErrorResponse(msg))
		return
	}
	c.JSON(http.StatusOK, dto.NewAnalysisResponse(analysis))
}

// GetQuote returns the current price for one ticker.
//
// GET /stocks/:symbol/quote
func (h *StockHandler) GetQuote(c *gin.Context) {
	quote, isDemo, err := h.uc.Quote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		status, msg := mapError(err)
		c.JSON(status, dto.NewErrorResponse(msg))
		return
	}
	c.JSON(http.StatusOK, dto.QuoteResponse{
		Status:     "success",
		Ticker:     quote.Symbol,
		Price:      quote.Price,
		IsDemoData: isDemo,
	})
}

// GetBatchQuotes returns quotes for a comma-separated list of tickers.
// Partial resolution is reported in the payload status, not as an HTTP
// error.
//
// GET /stocks/quotes?symbols=AAPL,MSFT
func (h *StockHandler) GetBatchQuotes(c *gin.Context) {
	raw := c.Query("symbols")
	if strings.TrimSpace(raw) == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbols query parameter is required"))
		return
	}

	symbols := make([]string, 0)
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}

	quotes, status := h.uc.BatchQuote(c.Request.Context(), symbols)
	c.JSON(http.StatusOK, dto.NewBatchQuoteResponse(quotes, status))
}

// mapError translates usecase errors into HTTP status codes and user-facing
// messages.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidSymbol):
		return http.StatusBadRequest, "ticker symbol must be 1-10 characters: letters, digits, or '.'"
	case errors.Is(err, usecase.ErrNoData):
		return http.StatusBadGateway, "no market data available for this symbol"
	default:
		return http.StatusBadGateway, err.Error()
	}
}

package router

import (
	"github.com/gin-gonic/gin"

	stockhandler "github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/transport/handler"
	watchlisthandler "github.com/Gotppsn/iGotMoney-sub003/internal/feature/watchlist/transport/handler"
	"github.com/Gotppsn/iGotMoney-sub003/internal/platform/http/handler"
)

// NewRouter wires all HTTP routes.
func NewRouter(stocks *stockhandler.StockHandler, watchlist *watchlisthandler.WatchlistHandler) *gin.Engine {
	r := gin.Default()

	// liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	// quotes and analysis
	r.GET("/stocks/quotes", stocks.GetBatchQuotes)
	r.GET("/stocks/:symbol/quote", stocks.GetQuote)
	r.GET("/stocks/:symbol/analysis", stocks.GetAnalysis)

	// tracked symbols
	r.GET("/watchlist", watchlist.List)
	r.POST("/watchlist", watchlist.Add)
	r.PUT("/watchlist/:id", watchlist.Update)
	r.DELETE("/watchlist/:id", watchlist.Remove)

	return r
}

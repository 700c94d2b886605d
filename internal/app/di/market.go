// Package di provides dependency injection factories for creating application components.
package di

import (
	"os"
	"strconv"
	"time"

	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/adapters/finnhub"
	infrahttp "github.com/Gotppsn/iGotMoney-sub003/internal/platform/http"
	"github.com/Gotppsn/iGotMoney-sub003/internal/shared/ratelimiter"
)

// Finnhub's free tier allows 60 REST calls per minute.
const (
	defaultCallLimit     = 60
	providerCallInterval = time.Minute
)

func callLimit() int {
	if v := os.Getenv("PROVIDER_CALL_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultCallLimit
}

// NewMarket creates a fully configured Finnhub client with HTTP client
// and call budget. Without an API key every call would fail upstream
// anyway, so the budget is opened up and the usecase's demo fallback
// takes over immediately instead of burning the rate window.
func NewMarket() *finnhub.Client {
	cfg := finnhub.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)

	var opts []ratelimiter.Option
	if cfg.APIKey == "" {
		opts = append(opts, ratelimiter.Unlimited())
	}
	budget := ratelimiter.NewRateLimiter(callLimit(), providerCallInterval, opts...)

	return finnhub.NewClient(cfg, httpClient, budget)
}

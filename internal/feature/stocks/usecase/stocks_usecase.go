// Package usecase implements the market-data analysis orchestrator: the
// only entry points the surrounding application calls. It composes the
// provider client, the expiring cache, and the demo generator into a
// fallback chain (live -> cached -> stale -> synthetic) and feeds the result
// through the indicator and recommendation engines.
package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/domain/entity"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/indicator"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/recommend"
)

// Cache TTL classes. The values double as key namespace segments in the
// cache store, so price and analysis payloads for one symbol never collide.
const (
	CacheClassPrice    = "price"
	CacheClassAnalysis = "analysis"
)

// symbolPattern accepts upper-case alphanumeric tickers (plus '.'), 1-10
// characters. Anything else is rejected before any I/O.
var symbolPattern = regexp.MustCompile(`^[A-Z0-9.]{1,10}$`)

// MarketRepository abstracts the external market-data provider.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type MarketRepository interface {
	// GetQuote fetches the latest quote. Returns ErrRateLimited when the
	// call budget vetoes the request.
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
	// GetProfile fetches the company name; callers fall back to the symbol.
	GetProfile(ctx context.Context, symbol string) (string, error)
	// GetCandles fetches up to days daily candles, ascending by date.
	GetCandles(ctx context.Context, symbol string, days int) ([]entity.Candle, error)
}

// CacheStore abstracts the two-tier expiring cache. A stale read is
// distinguished from an absent one: stale entries remain retrievable as a
// last-resort fallback.
type CacheStore interface {
	GetFresh(ctx context.Context, class, symbol string) (json.RawMessage, bool)
	GetStaleIfAny(ctx context.Context, class, symbol string) (json.RawMessage, bool)
	ExistsFresh(ctx context.Context, class, symbol string) bool
	Put(ctx context.Context, class, symbol string, payload json.RawMessage) error
}

// DemoDataSource abstracts the deterministic synthetic generator. It never
// fails, which makes it the terminal link of the fallback chain.
type DemoDataSource interface {
	Quote(symbol string) entity.Quote
	Series(symbol string, days int) []entity.Candle
}

// Config holds the orchestrator's behavior switches.
type Config struct {
	// AllowDemoFallback enables synthetic data when live and cached data are
	// both unavailable. Default on.
	AllowDemoFallback bool
	// SeriesDays is the historical window requested for analysis.
	SeriesDays int
}

// LoadConfig reads orchestrator configuration from environment variables.
func LoadConfig() Config {
	allow := true
	if v := os.Getenv("ALLOW_DEMO_FALLBACK"); v != "" {
		allow = v != "false" && v != "0"
	}
	return Config{
		AllowDemoFallback: allow,
		SeriesDays:        61,
	}
}

// StocksUsecase orchestrates quote and analysis requests.
type StocksUsecase struct {
	market MarketRepository
	cache  CacheStore
	demo   DemoDataSource
	cfg    Config
}

// NewStocksUsecase creates a StocksUsecase with the given collaborators.
func NewStocksUsecase(market MarketRepository, cache CacheStore, demo DemoDataSource, cfg Config) *StocksUsecase {
	if cfg.SeriesDays <= 0 {
		cfg.SeriesDays = 61
	}
	return &StocksUsecase{market: market, cache: cache, demo: demo, cfg: cfg}
}

// NormalizeSymbol upper-cases and validates a raw ticker. Returns
// ErrInvalidSymbol for anything not matching the accepted shape.
func NormalizeSymbol(raw string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if !symbolPattern.MatchString(symbol) {
		return "", ErrInvalidSymbol
	}
	return symbol, nil
}

// Quote resolves the current quote for one ticker through the fallback
// chain. The returned bool reports whether the quote is synthetic.
func (u *StocksUsecase) Quote(ctx context.Context, raw string) (entity.Quote, bool, error) {
	symbol, err := NormalizeSymbol(raw)
	if err != nil {
		return entity.Quote{}, false, err
	}
	return u.resolveQuote(ctx, symbol)
}

// BatchStatus classifies the outcome of a batch quote request.
type BatchStatus string

const (
	BatchSuccess BatchStatus = "success"
	BatchPartial BatchStatus = "partial"
	BatchError   BatchStatus = "error"
)

// BatchQuote resolves quotes for several tickers sequentially, re-checking
// the call budget per symbol. Partial success is a first-class outcome:
// some symbols may resolve live, others via cache or demo data, and failed
// symbols are simply absent from the result map.
func (u *StocksUsecase) BatchQuote(ctx context.Context, symbols []string) (map[string]entity.Quote, BatchStatus) {
	quotes := make(map[string]entity.Quote, len(symbols))
	failed := 0

	for _, raw := range symbols {
		quote, _, err := u.Quote(ctx, raw)
		if err != nil {
			slog.Warn("batch quote entry failed", "symbol", raw, "error", err)
			failed++
			continue
		}
		quotes[quote.Symbol] = quote
	}

	switch {
	case failed == 0:
		return quotes, BatchSuccess
	case len(quotes) > 0:
		return quotes, BatchPartial
	default:
		return quotes, BatchError
	}
}

// Analyze runs the full pipeline for one ticker: quote, company profile,
// historical series, indicators, recommendation. Results are cached under
// the analysis TTL class.
func (u *StocksUsecase) Analyze(ctx context.Context, raw string) (entity.Analysis, error) {
	symbol, err := NormalizeSymbol(raw)
	if err != nil {
		return entity.Analysis{}, err
	}

	if payload, ok := u.cache.GetFresh(ctx, CacheClassAnalysis, symbol); ok {
		var cached entity.Analysis
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	analysis, err := u.buildAnalysis(ctx, symbol)
	if err != nil {
		// Any stored analysis, however old, beats an error page.
		if payload, ok := u.cache.GetStaleIfAny(ctx, CacheClassAnalysis, symbol); ok {
			var stale entity.Analysis
			if jsonErr := json.Unmarshal(payload, &stale); jsonErr == nil {
				slog.Warn("serving stale analysis", "symbol", symbol, "error", err)
				return stale, nil
			}
		}
		return entity.Analysis{}, err
	}

	if payload, err := json.Marshal(analysis); err == nil {
		if err := u.cache.Put(ctx, CacheClassAnalysis, symbol, payload); err != nil {
			slog.Warn("analysis cache write failed", "symbol", symbol, "error", err)
		}
	}
	return analysis, nil
}

func (u *StocksUsecase) buildAnalysis(ctx context.Context, symbol string) (entity.Analysis, error) {
	quote, quoteIsDemo, err := u.resolveQuote(ctx, symbol)
	if err != nil {
		return entity.Analysis{}, err
	}

	name := symbol
	if n, err := u.market.GetProfile(ctx, symbol); err == nil && n != "" {
		name = n
	}

	series, seriesIsDemo := u.resolveSeries(ctx, symbol)
	closes := entity.Closes(series)

	line, signal, _ := indicator.MACD(closes)
	upper, _, lower := indicator.Bollinger(closes, 20, 2)
	indicators := entity.IndicatorSet{
		ShortMA:        indicator.SMA(closes, 20),
		LongMA:         indicator.SMA(closes, 50),
		EMA:            indicator.EMA(closes, 12),
		RSI:            indicator.RSI(closes, 14),
		MACDLine:       line,
		MACDSignal:     signal,
		BollingerUpper: upper,
		BollingerLower: lower,
		Support:        indicator.Support(closes, quote.Price),
		Resistance:     indicator.Resistance(closes, quote.Price),
	}

	rec := recommend.Recommend(recommend.Inputs{
		Current:        quote.Price,
		ShortMA:        indicators.ShortMA,
		LongMA:         indicators.LongMA,
		RSI:            indicators.RSI,
		MACDLine:       indicators.MACDLine,
		MACDSignal:     indicators.MACDSignal,
		BollingerUpper: indicators.BollingerUpper,
		BollingerLower: indicators.BollingerLower,
	})

	return entity.Analysis{
		Symbol:         symbol,
		CompanyName:    name,
		Quote:          quote,
		Indicators:     indicators,
		Recommendation: rec,
		History:        series,
		IsDemoData:     quoteIsDemo || seriesIsDemo,
	}, nil
}

// resolveQuote walks the fallback chain: fresh cache, live provider, stale
// cache, demo generator. Only when every link is unavailable does it return
// ErrNoData.
func (u *StocksUsecase) resolveQuote(ctx context.Context, symbol string) (entity.Quote, bool, error) {
	if payload, ok := u.cache.GetFresh(ctx, CacheClassPrice, symbol); ok {
		var cached entity.Quote
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, false, nil
		}
	}

	quote, err := u.market.GetQuote(ctx, symbol)
	if err == nil {
		if payload, jsonErr := json.Marshal(quote); jsonErr == nil {
			if putErr := u.cache.Put(ctx, CacheClassPrice, symbol, payload); putErr != nil {
				slog.Warn("price cache write failed", "symbol", symbol, "error", putErr)
			}
		}
		return quote, false, nil
	}
	slog.Warn("live quote unavailable", "symbol", symbol, "error", err)

	if payload, ok := u.cache.GetStaleIfAny(ctx, CacheClassPrice, symbol); ok {
		var stale entity.Quote
		if jsonErr := json.Unmarshal(payload, &stale); jsonErr == nil {
			return stale, false, nil
		}
	}

	if u.cfg.AllowDemoFallback {
		return u.demo.Quote(symbol), true, nil
	}
	return entity.Quote{}, false, ErrNoData
}

// resolveSeries fetches the historical series, degrading to synthetic bars
// when the provider has nothing. An empty series is acceptable: every
// indicator tolerates it.
func (u *StocksUsecase) resolveSeries(ctx context.Context, symbol string) ([]entity.Candle, bool) {
	series, err := u.market.GetCandles(ctx, symbol, u.cfg.SeriesDays)
	if err == nil && len(series) > 0 {
		return series, false
	}
	if err != nil {
		slog.Warn("live candles unavailable", "symbol", symbol, "error", err)
	}
	if u.cfg.AllowDemoFallback {
		return u.demo.Series(symbol, u.cfg.SeriesDays), true
	}
	return nil, false
}

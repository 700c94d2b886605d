// Package scheduler runs periodic background jobs. Its single job today
// is a cron-driven refresh that keeps cached quotes warm for every
// watchlist symbol.
package scheduler

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/domain/entity"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/usecase"
)

// DefaultRefreshSpec refreshes quotes every ten minutes, which keeps the
// 5 minute price cache from going fully cold between user visits without
// burning through the provider's call budget.
const DefaultRefreshSpec = "@every 10m"

// SymbolSource yields the ticker symbols that should be kept warm.
type SymbolSource interface {
	Symbols(ctx context.Context) ([]string, error)
}

// QuoteFetcher resolves quotes for a batch of symbols.
type QuoteFetcher interface {
	BatchQuote(ctx context.Context, symbols []string) (map[string]entity.Quote, usecase.BatchStatus)
}

// QuoteRefresher schedules periodic batch quote refreshes for the
// watchlist.
type QuoteRefresher struct {
	cron    *cron.Cron
	spec    string
	source  SymbolSource
	fetcher QuoteFetcher
	timeout time.Duration
}

// NewQuoteRefresher creates a refresher with the given cron spec. The
// spec comes from QUOTE_REFRESH_CRON via LoadRefreshSpec.
func NewQuoteRefresher(spec string, source SymbolSource, fetcher QuoteFetcher) *QuoteRefresher {
	return &QuoteRefresher{
		cron:    cron.New(),
		spec:    spec,
		source:  source,
		fetcher: fetcher,
		timeout: 2 * time.Minute,
	}
}

// LoadRefreshSpec reads the cron spec from the environment.
func LoadRefreshSpec() string {
	if spec := os.Getenv("QUOTE_REFRESH_CRON"); spec != "" {
		return spec
	}
	return DefaultRefreshSpec
}

// Start registers the refresh job and launches the cron loop.
func (r *QuoteRefresher) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.RefreshOnce); err != nil {
		return err
	}
	r.cron.Start()
	slog.Info("quote refresher started", "spec", r.spec)
	return nil
}

// Stop halts the cron loop and waits for a running refresh to finish.
func (r *QuoteRefresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// RefreshOnce performs a single refresh pass. It is the cron job body,
// exported so callers can trigger an immediate warm-up at startup.
func (r *QuoteRefresher) RefreshOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	symbols, err := r.source.Symbols(ctx)
	if err != nil {
		slog.Error("quote refresh: listing watchlist symbols failed", "error", err)
		return
	}
	if len(symbols) == 0 {
		return
	}

	quotes, status := r.fetcher.BatchQuote(ctx, symbols)
	slog.Info("quote refresh completed",
		"requested", len(symbols),
		"resolved", len(quotes),
		"status", status,
	)
}

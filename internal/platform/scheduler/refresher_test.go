package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/domain/entity"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/usecase"
)

type stubSource struct {
	symbols []string
	err     error
}

func (s *stubSource) Symbols(ctx context.Context) ([]string, error) {
	return s.symbols, s.err
}

type recordingFetcher struct {
	calls [][]string
}

func (f *recordingFetcher) BatchQuote(ctx context.Context, symbols []string) (map[string]entity.Quote, usecase.BatchStatus) {
	f.calls = append(f.calls, symbols)
	quotes := make(map[string]entity.Quote, len(symbols))
	for _, s := range symbols {
		quotes[s] = entity.Quote{Symbol: s, Price: 100}
	}
	return quotes, usecase.BatchSuccess
}

func TestQuoteRefresher_RefreshOnce(t *testing.T) {
	t.Parallel()

	source := &stubSource{symbols: []string{"AAPL", "MSFT"}}
	fetcher := &recordingFetcher{}
	r := NewQuoteRefresher(DefaultRefreshSpec, source, fetcher)

	r.RefreshOnce()

	assert.Len(t, fetcher.calls, 1)
	assert.Equal(t, []string{"AAPL", "MSFT"}, fetcher.calls[0])
}

func TestQuoteRefresher_SkipsEmptyWatchlist(t *testing.T) {
	t.Parallel()

	fetcher := &recordingFetcher{}
	r := NewQuoteRefresher(DefaultRefreshSpec, &stubSource{}, fetcher)

	r.RefreshOnce()

	assert.Empty(t, fetcher.calls, "no batch call without symbols")
}

func TestQuoteRefresher_SourceErrorDoesNotFetch(t *testing.T) {
	t.Parallel()

	source := &stubSource{err: errors.New("db down")}
	fetcher := &recordingFetcher{}
	r := NewQuoteRefresher(DefaultRefreshSpec, source, fetcher)

	r.RefreshOnce()

	assert.Empty(t, fetcher.calls)
}

func TestNewQuoteRefresher_RejectsBadSpec(t *testing.T) {
	t.Parallel()

	r := NewQuoteRefresher("not a cron spec", &stubSource{}, &recordingFetcher{})
	assert.Error(t, r.Start())
}

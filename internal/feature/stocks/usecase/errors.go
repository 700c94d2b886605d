package usecase

import "errors"

var (
	// ErrInvalidSymbol is returned for a malformed ticker symbol, before any
	// I/O happens. Surfaced to the user as a validation message.
	ErrInvalidSymbol = errors.New("invalid ticker symbol")

	// ErrRateLimited signals the outbound call budget is exhausted. It is a
	// routing signal toward the cache/demo fallback, not a hard failure.
	ErrRateLimited = errors.New("api call budget exhausted")

	// ErrNoData is the only genuine error: fresh cache absent, stale cache
	// absent, and demo fallback disabled.
	ErrNoData = errors.New("no market data available")
)

// Package ratelimiter tracks an outbound call budget over a fixed time
// window. It never blocks and never errors: exceeding the budget is a
// boolean veto the caller turns into a fallback, not a failure.
package ratelimiter

import (
	"sync"
	"time"
)

// RateLimiter limits the number of acquisitions per fixed window. The state
// is process-local; when deployed with multiple worker processes each worker
// carries its own budget.
type RateLimiter struct {
	mu          sync.Mutex
	limit       int           // acquisitions allowed per window
	interval    time.Duration // window length
	count       int
	windowStart time.Time
	unlimited   bool
	now         func() time.Time
}

// Option configures a RateLimiter.
type Option func(*RateLimiter)

// WithClock injects the time source, so tests can fast-forward the window
// instead of sleeping.
func WithClock(now func() time.Time) Option {
	return func(rl *RateLimiter) { rl.now = now }
}

// Unlimited makes TryAcquire always succeed. Used in demo-data-preferred
// mode, where no real network call backs the acquisition.
func Unlimited() Option {
	return func(rl *RateLimiter) { rl.unlimited = true }
}

// NewRateLimiter creates a limiter allowing limit acquisitions per interval.
func NewRateLimiter(limit int, interval time.Duration, opts ...Option) *RateLimiter {
	rl := &RateLimiter{
		limit:    limit,
		interval: interval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(rl)
	}
	rl.windowStart = rl.now()
	return rl
}

// TryAcquire consumes one budget unit if available. When the current window
// has elapsed the counter resets and a fresh window starts at now. Safe for
// concurrent use; each call is checked independently.
func (rl *RateLimiter) TryAcquire() bool {
	if rl.unlimited {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.windowStart) >= rl.interval {
		rl.count = 0
		rl.windowStart = now
	}

	if rl.count < rl.limit {
		rl.count++
		return true
	}
	return false
}

// Remaining reports how many acquisitions are left in the current window.
func (rl *RateLimiter) Remaining() int {
	if rl.unlimited {
		return rl.limit
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.now().Sub(rl.windowStart) >= rl.interval {
		return rl.limit
	}
	return rl.limit - rl.count
}

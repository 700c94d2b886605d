package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-process cache store with the same freshness semantics
// as RedisStore. It backs the engine when Redis is not configured, and keeps
// tests free of external dependencies. Entries are copied on write so
// concurrent readers never observe a torn value.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
	cfg     Config
	now     func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithMemoryClock injects the time source used for freshness checks.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(cfg Config, opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]Entry),
		cfg:     cfg,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetFresh returns the payload for (class, symbol) when the entry exists and
// is within its TTL.
func (s *MemoryStore) GetFresh(ctx context.Context, class, symbol string) (json.RawMessage, bool) {
	s.mu.RLock()
	entry, ok := s.entries[memKey(class, symbol)]
	s.mu.RUnlock()

	if !ok || s.now().Sub(entry.StoredAt) >= ttlFor(s.cfg, class) {
		return nil, false
	}
	return entry.Payload, true
}

// GetStaleIfAny returns the payload regardless of freshness, as long as it
// has not passed the retention horizon.
func (s *MemoryStore) GetStaleIfAny(ctx context.Context, class, symbol string) (json.RawMessage, bool) {
	s.mu.RLock()
	entry, ok := s.entries[memKey(class, symbol)]
	s.mu.RUnlock()

	if !ok || s.now().Sub(entry.StoredAt) >= s.cfg.Retention {
		return nil, false
	}
	return entry.Payload, true
}

// ExistsFresh reports whether a fresh entry exists for (class, symbol).
func (s *MemoryStore) ExistsFresh(ctx context.Context, class, symbol string) bool {
	_, ok := s.GetFresh(ctx, class, symbol)
	return ok
}

// Put stores the payload under (class, symbol), overwriting any previous
// entry.
func (s *MemoryStore) Put(ctx context.Context, class, symbol string, payload json.RawMessage) error {
	buf := make(json.RawMessage, len(payload))
	copy(buf, payload)

	s.mu.Lock()
	s.entries[memKey(class, symbol)] = Entry{StoredAt: s.now(), Payload: buf}
	s.mu.Unlock()
	return nil
}

func memKey(class, symbol string) string {
	return fmt.Sprintf("%s:%s", class, strings.ToUpper(symbol))
}

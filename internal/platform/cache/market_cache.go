// Package cache provides the expiring key/value store backing the market
// data engine. Entries carry an explicit stored-at timestamp and are grouped
// into TTL classes; an entry past its TTL is stale but still retrievable as
// a last-resort fallback, because any real number beats none.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL classes. Keys are namespaced by class so price and analysis payloads
// for the same symbol cannot collide.
const (
	ClassPrice    = "price"
	ClassAnalysis = "analysis"
)

// Config holds the freshness windows per TTL class and the retention horizon
// after which stale entries are physically evicted.
type Config struct {
	PriceTTL    time.Duration
	AnalysisTTL time.Duration
	Retention   time.Duration
}

// LoadConfig reads cache configuration from environment variables, falling
// back to the defaults (300s price, 3600s analysis, 7 days retention).
func LoadConfig() Config {
	return Config{
		PriceTTL:    secondsFromEnv("PRICE_CACHE_TTL_SECONDS", 300),
		AnalysisTTL: secondsFromEnv("ANALYSIS_CACHE_TTL_SECONDS", 3600),
		Retention:   7 * 24 * time.Hour,
	}
}

func secondsFromEnv(key string, def int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
		slog.Warn("invalid cache TTL, using default", "key", key, "value", os.Getenv(key))
	}
	return time.Duration(def) * time.Second
}

// Entry is the stored envelope. Entries are immutable once written; a
// refresh overwrites the key with a new envelope (last-writer-wins).
type Entry struct {
	StoredAt time.Time       `json:"stored_at"`
	Payload  json.RawMessage `json:"payload"`
}

// RedisStore is the Redis-backed cache store. Redis key expiry is set to the
// retention horizon, not the freshness TTL: freshness is decided in code
// from the envelope timestamp so stale entries stay readable.
type RedisStore struct {
	rdb       *redis.Client
	cfg       Config
	namespace string
	now       func() time.Time
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisClock injects the time source used for freshness checks.
func WithRedisClock(now func() time.Time) RedisOption {
	return func(s *RedisStore) { s.now = now }
}

// NewRedisStore creates a Redis-backed store. If namespace is empty it uses
// "stocks".
func NewRedisStore(rdb *redis.Client, cfg Config, namespace string, opts ...RedisOption) *RedisStore {
	if namespace == "" {
		namespace = "stocks"
	}
	s := &RedisStore{
		rdb:       rdb,
		cfg:       cfg,
		namespace: namespace,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetFresh returns the payload for (class, symbol) when the entry exists and
// is within its TTL.
func (s *RedisStore) GetFresh(ctx context.Context, class, symbol string) (json.RawMessage, bool) {
	entry, ok := s.get(ctx, class, symbol)
	if !ok || !s.fresh(entry, class) {
		return nil, false
	}
	return entry.Payload, true
}

// GetStaleIfAny returns the payload regardless of freshness. Used as the
// last fallback when both the network path and the rate limiter fail.
func (s *RedisStore) GetStaleIfAny(ctx context.Context, class, symbol string) (json.RawMessage, bool) {
	entry, ok := s.get(ctx, class, symbol)
	if !ok {
		return nil, false
	}
	return entry.Payload, true
}

// ExistsFresh reports whether a fresh entry exists for (class, symbol).
func (s *RedisStore) ExistsFresh(ctx context.Context, class, symbol string) bool {
	_, ok := s.GetFresh(ctx, class, symbol)
	return ok
}

// Put stores the payload under (class, symbol), overwriting any previous
// entry.
func (s *RedisStore) Put(ctx context.Context, class, symbol string, payload json.RawMessage) error {
	entry := Entry{StoredAt: s.now(), Payload: payload}
	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(class, symbol), b, s.cfg.Retention).Err()
}

func (s *RedisStore) get(ctx context.Context, class, symbol string) (Entry, bool) {
	b, err := s.rdb.Get(ctx, s.key(class, symbol)).Bytes()
	if err != nil || len(b) == 0 {
		return Entry{}, false
	}
	var entry Entry
	if err := json.Unmarshal(b, &entry); err != nil {
		// Delete corrupted cache entry
		_ = s.rdb.Del(ctx, s.key(class, symbol)).Err()
		return Entry{}, false
	}
	return entry, true
}

func (s *RedisStore) fresh(entry Entry, class string) bool {
	return s.now().Sub(entry.StoredAt) < ttlFor(s.cfg, class)
}

func (s *RedisStore) key(class, symbol string) string {
	return fmt.Sprintf("%s:%s:%s", s.namespace, class, safe(strings.ToUpper(symbol)))
}

func ttlFor(cfg Config, class string) time.Duration {
	if class == ClassAnalysis {
		return cfg.AnalysisTTL
	}
	return cfg.PriceTTL
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}

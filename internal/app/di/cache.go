package di

import (
	"github.com/redis/go-redis/v9"

	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/usecase"
	"github.com/Gotppsn/iGotMoney-sub003/internal/platform/cache"
)

// NewCacheStore creates a CacheStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to a process-local in-memory store with the
// same TTL semantics.
func NewCacheStore(rdb *redis.Client) usecase.CacheStore {
	cfg := cache.LoadConfig()
	if rdb != nil {
		return cache.NewRedisStore(rdb, cfg, "stocks")
	}
	return cache.NewMemoryStore(cfg)
}

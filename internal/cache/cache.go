package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/HiteshiPatil10/tressora-backend/internal/config"
)

// Cache is a best-effort read-through cache for analytics aggregates.
// Redis being down never fails a request; callers fall back to the store.
type Cache struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return &Cache{rdb: rdb}
}

func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("cache get:", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Println("cache set:", err)
	}
}

// Invalidate drops keys matching the salon's analytics prefix after a write.
func (c *Cache) Invalidate(ctx context.Context, pattern string) {
	if c == nil || c.rdb == nil {
		return
	}

	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("cache invalidate:", err)
	}
}

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 24 * time.Hour

// ResultCache memoizes detection and recipe results in Redis. A nil client
// disables caching; every method then degrades to a miss or no-op, so the
// request path works identically without Redis.
type ResultCache struct {
	redis *redis.Client
}

// NewResultCache creates a cache over the given Redis client (may be nil).
func NewResultCache(redisClient *redis.Client) *ResultCache {
	return &ResultCache{redis: redisClient}
}

// ImageKey derives the detection cache key from the image bytes.
func ImageKey(image []byte) string {
	sum := sha256.Sum256(image)
	return "detect:" + hex.EncodeToString(sum[:])
}

// RecipesKey derives the recipe cache key from the detected name and count.
func RecipesKey(name string, count int) string {
	sum := sha256.Sum256([]byte(name))
	return fmt.Sprintf("recipes:%s:%d", hex.EncodeToString(sum[:]), count)
}

// Get unmarshals the cached value into v. Returns false on miss, disabled
// cache or error; errors are logged, never surfaced.
func (c *ResultCache) Get(ctx context.Context, key string, v interface{}) bool {
	if c == nil || c.redis == nil {
		return false
	}
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[ResultCache] get %s failed: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[ResultCache] unmarshal %s failed: %v", key, err)
		return false
	}
	return true
}

// Set stores v under key with the cache TTL. Best-effort.
func (c *ResultCache) Set(ctx context.Context, key string, v interface{}) {
	if c == nil || c.redis == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[ResultCache] marshal %s failed: %v", key, err)
		return
	}
	if err := c.redis.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		log.Printf("[ResultCache] set %s failed: %v", key, err)
	}
}

package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is an exact-match prompt cache. Prompts are keyed by their
// SHA-256 so arbitrary prompt text never becomes part of a key.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "completion:" + hex.EncodeToString(sum[:])
}

func (r *RedisCache) Get(ctx context.Context, prompt string) (string, bool, error) {
	val, err := r.client.Get(ctx, cacheKey(prompt)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisCache) Set(ctx context.Context, prompt, completion string, ttl time.Duration) error {
	return r.client.Set(ctx, cacheKey(prompt), completion, ttl).Err()
}

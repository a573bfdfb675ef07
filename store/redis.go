package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"newsharvest/types"
)

// Redis stores the latest run result under a single key so the API survives
// process restarts.
type Redis struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisConfig configures the Redis-backed store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
	TTL      time.Duration
}

// NewRedisFromEnv creates a Redis store when REDIS_ADDR is set; returns
// (nil, nil) otherwise so callers fall back to the in-memory store.
// Optional: REDIS_PASS, RUN_KEY, RUN_TTL_SECONDS.
func NewRedisFromEnv(ctx context.Context) (*Redis, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}
	key := os.Getenv("RUN_KEY")
	if key == "" {
		key = "newsharvest:lastrun"
	}
	ttl := 72 * time.Hour
	if t := os.Getenv("RUN_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}
	return NewRedis(ctx, RedisConfig{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		Key:      key,
		TTL:      ttl,
	})
}

// NewRedis creates the store and verifies connectivity.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return &Redis{client: client, key: cfg.Key, ttl: cfg.TTL}, nil
}

// Save serializes the result under the configured key.
func (r *Redis) Save(ctx context.Context, result *types.RunResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode run result: %w", err)
	}
	if err := r.client.Set(ctx, r.key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("store run result: %w", err)
	}
	return nil
}

// Latest loads and decodes the stored result.
func (r *Redis) Latest(ctx context.Context) (*types.RunResult, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, ErrNoRuns
	}
	if err != nil {
		return nil, fmt.Errorf("load run result: %w", err)
	}
	var result types.RunResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("decode run result: %w", err)
	}
	return &result, nil
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

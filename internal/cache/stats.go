package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"showcase-portal-backend/internal/logger"
	"showcase-portal-backend/internal/repository"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every statistics key
const DefaultPrefix = "showcase:stats"

// StatsCache keeps showcase statistics in Redis. A nil *StatsCache is a
// valid disabled cache: every Get misses and writes are dropped.
type StatsCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStatsCache wraps client with the given TTL
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &StatsCache{client: client, prefix: DefaultPrefix, ttl: ttl}
}

// NewRedisClient connects to addr and pings it. It returns nil when the
// server is unreachable so callers can run without a cache.
func NewRedisClient(ctx context.Context, addr, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.WithContext(ctx).Warnf("Redis unavailable at %s, statistics cache disabled: %v", addr, err)
		_ = client.Close()
		return nil
	}
	return client
}

func (c *StatsCache) key(scope string) string {
	return c.prefix + ":" + scope
}

// Get returns the cached statistics for scope
func (c *StatsCache) Get(ctx context.Context, scope string) (*repository.ShowcaseStatistics, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, c.key(scope)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WithContext(ctx).Warnf("Statistics cache read failed: %v", err)
		}
		return nil, false
	}
	var stats repository.ShowcaseStatistics
	if err := json.Unmarshal(raw, &stats); err != nil {
		logger.WithContext(ctx).Warnf("Discarding corrupt statistics cache entry %s: %v", scope, err)
		return nil, false
	}
	return &stats, true
}

// Set stores stats for scope with the configured TTL
func (c *StatsCache) Set(ctx context.Context, scope string, stats *repository.ShowcaseStatistics) {
	if c == nil || stats == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(scope), raw, c.ttl).Err(); err != nil {
		logger.WithContext(ctx).Warnf("Statistics cache write failed: %v", err)
	}
}

// Invalidate drops every cached scope
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, c.prefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.WithContext(ctx).Warnf("Statistics cache scan failed: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.WithContext(ctx).Warnf("Statistics cache invalidation failed: %v", err)
	}
}

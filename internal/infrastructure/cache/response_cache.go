package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hospital-directory/internal/infrastructure/metrics"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	// RedisKeyPrefix namespaces the durable tier.
	RedisKeyPrefix = "directory:cache:"

	tierMemory = "memory"
	tierRedis  = "redis"

	redisOpTimeout = 2 * time.Second
)

type cacheEntry struct {
	ExpiresAt time.Time `json:"expires_at"`
	Data      []byte    `json:"data"`
}

// ResponseCache memoizes upstream responses in a bounded in-process LRU, mirrored
// to Redis when a client is configured. Redis survives restarts and is shared
// between kiosk replicas; the memory tier is consulted first.
type ResponseCache struct {
	memory  *lru.Cache[string, cacheEntry]
	redis   *redis.Client
	log     *logrus.Logger
	metrics *metrics.DirectoryMetrics
	group   singleflight.Group
	now     func() time.Time
}

// NewResponseCache creates a cache holding at most maxEntries in memory.
// redisClient may be nil to run memory-only.
func NewResponseCache(maxEntries int, redisClient *redis.Client, log *logrus.Logger, m *metrics.DirectoryMetrics) (*ResponseCache, error) {
	if maxEntries <= 0 {
		maxEntries = 512
	}
	memory, err := lru.New[string, cacheEntry](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create memory cache: %w", err)
	}

	return &ResponseCache{
		memory:  memory,
		redis:   redisClient,
		log:     log,
		metrics: m,
		now:     time.Now,
	}, nil
}

// Get returns a live value for key, promoting Redis hits into memory.
func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if entry, ok := c.memory.Get(key); ok {
		if !c.expired(entry) {
			c.metrics.ObserveCache(tierMemory, true)
			return entry.Data, true
		}
		c.memory.Remove(key)
	}
	c.metrics.ObserveCache(tierMemory, false)

	if c.redis == nil {
		return nil, false
	}

	entry, ok := c.getDurable(ctx, key)
	c.metrics.ObserveCache(tierRedis, ok)
	if !ok {
		return nil, false
	}
	c.memory.Add(key, entry)
	return entry.Data, true
}

// Set stores value under key until ttl elapses.
func (c *ResponseCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	entry := cacheEntry{ExpiresAt: c.now().Add(ttl), Data: value}
	c.memory.Add(key, entry)

	if c.redis == nil {
		return
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		c.log.Warnf("Failed to encode cache entry %s: %+v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), redisOpTimeout)
	defer cancel()
	if err := c.redis.Set(ctx, RedisKeyPrefix+key, payload, ttl).Err(); err != nil {
		c.log.Warnf("Failed to mirror cache entry %s to Redis: %+v", key, err)
	}
}

// Delete removes key from both tiers.
func (c *ResponseCache) Delete(ctx context.Context, key string) {
	c.memory.Remove(key)
	if c.redis == nil {
		return
	}
	if err := c.redis.Del(ctx, RedisKeyPrefix+key).Err(); err != nil {
		c.log.Warnf("Failed to delete cache entry %s from Redis: %+v", key, err)
	}
}

// Clear drops every entry of both tiers.
func (c *ResponseCache) Clear(ctx context.Context) error {
	c.memory.Purge()
	if c.redis == nil {
		return nil
	}

	iter := c.redis.Scan(ctx, 0, RedisKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete cache keys: %w", err)
	}
	return nil
}

// GetOrSet returns the cached value or runs fetch and stores its result.
// Fetch errors are not cached.
func (c *ResponseCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetch func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	if value, ok := c.Get(ctx, key); ok {
		return value, nil
	}
	return c.load(ctx, key, ttl, fetch)
}

// Refresh runs fetch without looking at the cached value and stores the result,
// restarting the entry's lifetime. On error the previous entry is left alone.
func (c *ResponseCache) Refresh(ctx context.Context, key string, ttl time.Duration, fetch func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	return c.load(ctx, key, ttl, fetch)
}

// load shares one fetch between concurrent callers of the same key. The fetch
// is detached from the cancellation of whichever caller started it; each
// caller still returns early when its own ctx is done.
func (c *ResponseCache) load(ctx context.Context, key string, ttl time.Duration, fetch func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		data, err := fetch(shared)
		if err != nil {
			return nil, err
		}
		c.Set(shared, key, data, ttl)
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// Len reports the number of entries in the memory tier, expired ones included.
func (c *ResponseCache) Len() int {
	return c.memory.Len()
}

func (c *ResponseCache) getDurable(ctx context.Context, key string) (cacheEntry, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	payload, err := c.redis.Get(ctx, RedisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read cache entry %s from Redis: %+v", key, err)
		}
		return cacheEntry{}, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		c.log.Warnf("Failed to decode cache entry %s: %+v", key, err)
		return cacheEntry{}, false
	}
	if c.expired(entry) {
		return cacheEntry{}, false
	}
	return entry, true
}

func (c *ResponseCache) expired(entry cacheEntry) bool {
	return c.now().After(entry.ExpiresAt)
}

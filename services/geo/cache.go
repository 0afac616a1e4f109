package geo

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// selfKey caches the lookup used for non-public client addresses
const selfKey = "self"

// IPCache stores successful IP lookups
type IPCache interface {
	Get(ctx context.Context, key string) (IPLocation, bool)
	Set(ctx context.Context, key string, loc IPLocation)
}

type memoryEntry struct {
	loc       IPLocation
	expiresAt time.Time
}

// MemoryIPCache is a process-local cache with a fixed TTL
type MemoryIPCache struct {
	ttl     time.Duration
	entries map[string]memoryEntry
	mu      sync.RWMutex
}

func NewMemoryIPCache(ttl time.Duration) *MemoryIPCache {
	return &MemoryIPCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryIPCache) Get(ctx context.Context, key string) (IPLocation, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return IPLocation{}, false
	}
	if time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return IPLocation{}, false
	}
	return entry.loc, true
}

func (m *MemoryIPCache) Set(ctx context.Context, key string, loc IPLocation) {
	m.mu.Lock()
	m.entries[key] = memoryEntry{loc: loc, expiresAt: time.Now().Add(m.ttl)}
	m.mu.Unlock()
}

// RedisIPCache shares lookups between instances
type RedisIPCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

func NewRedisIPCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisIPCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisIPCache{
		client: client,
		ttl:    ttl,
		prefix: "geo:ip:",
		logger: logger,
	}
}

func (r *RedisIPCache) Get(ctx context.Context, key string) (IPLocation, bool) {
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("ip cache read failed", zap.String("key", key), zap.Error(err))
		}
		return IPLocation{}, false
	}
	var loc IPLocation
	if err := json.Unmarshal(raw, &loc); err != nil {
		r.logger.Warn("ip cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return IPLocation{}, false
	}
	return loc, true
}

func (r *RedisIPCache) Set(ctx context.Context, key string, loc IPLocation) {
	raw, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, r.prefix+key, raw, r.ttl).Err(); err != nil {
		r.logger.Warn("ip cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// CachedIPLocator wraps an IPLocator with a cache. Failures are not cached.
type CachedIPLocator struct {
	next  IPLocator
	cache IPCache
}

func NewCachedIPLocator(next IPLocator, cache IPCache) *CachedIPLocator {
	return &CachedIPLocator{next: next, cache: cache}
}

func (c *CachedIPLocator) Locate(ctx context.Context, ip string) (IPLocation, error) {
	key := ip
	if !isPublicIP(ip) {
		key = selfKey
	}
	if loc, ok := c.cache.Get(ctx, key); ok {
		return loc, nil
	}
	loc, err := c.next.Locate(ctx, ip)
	if err != nil {
		return IPLocation{}, err
	}
	c.cache.Set(ctx, key, loc)
	return loc, nil
}

// Package cache provides a small read-through cache for query results
// with invalidate-on-write semantics: every cached entry is tagged with
// a group ("books", "requests"), and any admin mutation invalidates the
// whole group so the next read re-fetches from the database.  There is
// no optimistic local patching and no eviction policy beyond the TTL
// backstop.
package cache

import (
    "context"
    "crypto/sha1"
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/veena-verse/bookshop-backend/internal/config"
)

// ErrMiss is returned by a KV when a key is absent.
var ErrMiss = errors.New("cache miss")

// KV is the minimal key-value surface the cache needs.  The production
// implementation wraps a Redis client; tests substitute an in-memory map.
type KV interface {
    Get(ctx context.Context, key string) ([]byte, error)
    SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error
    Del(ctx context.Context, keys ...string) error
    SAdd(ctx context.Context, set, member string) error
    SMembers(ctx context.Context, set string) ([]string, error)
}

// Cache caches JSON-serializable query results under group-tagged keys.
// A nil *Cache and a disabled cache both behave as pass-through.
type Cache struct {
    kv     KV
    ttl    time.Duration
    prefix string
}

// New builds a Cache over Redis.  A nil client or a disabled config
// yields a nil Cache, which all methods tolerate.
func New(rdb *redis.Client, cfg config.CacheConfig) *Cache {
    if rdb == nil || !cfg.Enabled {
        return nil
    }
    return NewWithKV(redisKV{rdb: rdb}, cfg)
}

// NewWithKV builds a Cache over an arbitrary KV.  Used by tests.
func NewWithKV(kv KV, cfg config.CacheConfig) *Cache {
    if kv == nil || !cfg.Enabled {
        return nil
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = time.Minute
    }
    return &Cache{kv: kv, ttl: ttl, prefix: cfg.Prefix}
}

// Key builds a stable cache key from the group and the raw query
// parameters that shaped the result set.
func (c *Cache) Key(group, raw string) string {
    if c == nil {
        return ""
    }
    sum := sha1.Sum([]byte(raw))
    return fmt.Sprintf("%s:%s:%x", c.prefix, group, sum[:])
}

func (c *Cache) groupSet(group string) string {
    return fmt.Sprintf("%s:%s:keys", c.prefix, group)
}

// GetJSON loads the entry under key into v and reports whether it was
// present.  Any backend error counts as a miss; reads must never fail
// because the cache is unavailable.
func (c *Cache) GetJSON(ctx context.Context, key string, v any) bool {
    if c == nil || key == "" {
        return false
    }
    data, err := c.kv.Get(ctx, key)
    if err != nil {
        return false
    }
    return json.Unmarshal(data, v) == nil
}

// PutJSON stores v under key and tags the key into the group's set so
// Invalidate can find it later.  Failures are logged and swallowed.
func (c *Cache) PutJSON(ctx context.Context, group, key string, v any) {
    if c == nil || key == "" {
        return
    }
    data, err := json.Marshal(v)
    if err != nil {
        return
    }
    if err := c.kv.SetEx(ctx, key, data, c.ttl); err != nil {
        log.Printf("cache: set %s failed: %v", key, err)
        return
    }
    if err := c.kv.SAdd(ctx, c.groupSet(group), key); err != nil {
        log.Printf("cache: tag %s failed: %v", key, err)
    }
}

// Invalidate drops every cached entry belonging to the given groups.
// Called after any create/update/delete so the next read re-fetches.
func (c *Cache) Invalidate(ctx context.Context, groups ...string) {
    if c == nil {
        return
    }
    for _, g := range groups {
        set := c.groupSet(g)
        keys, err := c.kv.SMembers(ctx, set)
        if err != nil {
            log.Printf("cache: invalidate %s failed: %v", g, err)
            continue
        }
        if len(keys) > 0 {
            if err := c.kv.Del(ctx, keys...); err != nil {
                log.Printf("cache: invalidate %s failed: %v", g, err)
            }
        }
        _ = c.kv.Del(ctx, set)
    }
}

// redisKV adapts *redis.Client to the KV interface.
type redisKV struct{ rdb *redis.Client }

func (r redisKV) Get(ctx context.Context, key string) ([]byte, error) {
    data, err := r.rdb.Get(ctx, key).Bytes()
    if errors.Is(err, redis.Nil) {
        return nil, ErrMiss
    }
    return data, err
}

func (r redisKV) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
    return r.rdb.SetEx(ctx, key, value, ttl).Err()
}

func (r redisKV) Del(ctx context.Context, keys ...string) error {
    return r.rdb.Del(ctx, keys...).Err()
}

func (r redisKV) SAdd(ctx context.Context, set, member string) error {
    return r.rdb.SAdd(ctx, set, member).Err()
}

func (r redisKV) SMembers(ctx context.Context, set string) ([]string, error) {
    return r.rdb.SMembers(ctx, set).Result()
}

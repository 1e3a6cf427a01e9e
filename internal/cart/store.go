package cart

import (
    "context"
    "errors"

    "github.com/redis/go-redis/v9"
)

// Store is the single persistence boundary for a cart: every mutation is
// followed by a Save (write-through, no batching) and startup performs
// one Load.
type Store interface {
    Save(ctx context.Context, c *Cart) error
    Load(ctx context.Context) (*Cart, error)
}

// RedisStore keeps the serialized cart snapshot under a single key.
type RedisStore struct {
    rdb *redis.Client
    key string
}

// NewRedisStore builds a store writing to the given key.
func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
    return &RedisStore{rdb: rdb, key: key}
}

// Save writes the full snapshot, replacing any previous value.
func (s *RedisStore) Save(ctx context.Context, c *Cart) error {
    data, err := c.Snapshot()
    if err != nil {
        return err
    }
    return s.rdb.Set(ctx, s.key, data, 0).Err()
}

// Load rehydrates the last snapshot.  A missing key or malformed value
// yields an empty cart, never an error the caller has to special-case.
func (s *RedisStore) Load(ctx context.Context) (*Cart, error) {
    data, err := s.rdb.Get(ctx, s.key).Bytes()
    if err != nil {
        if errors.Is(err, redis.Nil) {
            return New(), nil
        }
        return nil, err
    }
    return FromSnapshot(data), nil
}

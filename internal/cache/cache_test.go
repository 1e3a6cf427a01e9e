package cache_test

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/veena-verse/bookshop-backend/internal/cache"
    "github.com/veena-verse/bookshop-backend/internal/config"
)

// mapKV is an in-memory KV for tests.  TTLs are ignored.
type mapKV struct {
    values map[string][]byte
    sets   map[string]map[string]bool
}

func newMapKV() *mapKV {
    return &mapKV{values: map[string][]byte{}, sets: map[string]map[string]bool{}}
}

func (m *mapKV) Get(_ context.Context, key string) ([]byte, error) {
    v, ok := m.values[key]
    if !ok {
        return nil, cache.ErrMiss
    }
    return v, nil
}

func (m *mapKV) SetEx(_ context.Context, key string, value []byte, _ time.Duration) error {
    m.values[key] = value
    return nil
}

func (m *mapKV) Del(_ context.Context, keys ...string) error {
    for _, k := range keys {
        delete(m.values, k)
        delete(m.sets, k)
    }
    return nil
}

func (m *mapKV) SAdd(_ context.Context, set, member string) error {
    if m.sets[set] == nil {
        m.sets[set] = map[string]bool{}
    }
    m.sets[set][member] = true
    return nil
}

func (m *mapKV) SMembers(_ context.Context, set string) ([]string, error) {
    var out []string
    for k := range m.sets[set] {
        out = append(out, k)
    }
    return out, nil
}

func testCache(kv cache.KV) *cache.Cache {
    return cache.NewWithKV(kv, config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "t"})
}

func TestReadThrough(t *testing.T) {
    ctx := context.Background()
    c := testCache(newMapKV())

    key := c.Key("books", "search=&genre=all&sort=title_asc")
    var got []string
    assert.False(t, c.GetJSON(ctx, key, &got), "cold cache must miss")

    c.PutJSON(ctx, "books", key, []string{"Ann", "Mid", "Zed"})
    require.True(t, c.GetJSON(ctx, key, &got))
    assert.Equal(t, []string{"Ann", "Mid", "Zed"}, got)
}

func TestInvalidateDropsWholeGroup(t *testing.T) {
    ctx := context.Background()
    c := testCache(newMapKV())

    k1 := c.Key("books", "q1")
    k2 := c.Key("books", "q2")
    k3 := c.Key("requests", "q1")
    c.PutJSON(ctx, "books", k1, 1)
    c.PutJSON(ctx, "books", k2, 2)
    c.PutJSON(ctx, "requests", k3, 3)

    c.Invalidate(ctx, "books")

    var n int
    assert.False(t, c.GetJSON(ctx, k1, &n))
    assert.False(t, c.GetJSON(ctx, k2, &n))
    assert.True(t, c.GetJSON(ctx, k3, &n), "other groups stay cached")
}

func TestKeyIsStablePerQuery(t *testing.T) {
    c := testCache(newMapKV())
    assert.Equal(t, c.Key("books", "a"), c.Key("books", "a"))
    assert.NotEqual(t, c.Key("books", "a"), c.Key("books", "b"))
    assert.NotEqual(t, c.Key("books", "a"), c.Key("requests", "a"))
}

func TestNilCacheIsPassThrough(t *testing.T) {
    ctx := context.Background()
    var c *cache.Cache

    var v int
    assert.False(t, c.GetJSON(ctx, "k", &v))
    c.PutJSON(ctx, "books", "k", 1) // must not panic
    c.Invalidate(ctx, "books")

    assert.Nil(t, cache.NewWithKV(newMapKV(), config.CacheConfig{Enabled: false}))
}

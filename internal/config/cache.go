package config

import (
    "os"
    "time"
)

// CacheConfig defines settings for the read-through response cache that
// fronts the catalog and request list queries.  When Enabled is false or
// no Redis client could be constructed, caching is disabled and every
// read goes to the database.  Entries live for TTL but are invalidated
// eagerly whenever an admin mutation touches the corresponding table, so
// the TTL is only a backstop.
type CacheConfig struct {
    Enabled bool
    TTL     time.Duration
    Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled: getenv("CACHE_ENABLED", "true") == "true",
        TTL:     parseDur(getenv("CACHE_TTL", "5m")),
        Prefix:  getenv("CACHE_PREFIX", "bookshop"),
    }
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Minute
    }
    return d
}

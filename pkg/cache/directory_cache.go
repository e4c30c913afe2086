package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DirectoryCacheTTL bounds how stale a cached directory listing can get
	// when another process edits the backing store.
	DirectoryCacheTTL = 5 * time.Minute

	directoryCacheKey = "directory:companies"
)

// ErrCacheMiss is returned by DirectoryCache.Get when no listing is cached.
var ErrCacheMiss = errors.New("cache miss")

// CachedCompany is the read model stored in Redis for one directory entry.
type CachedCompany struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"idCode"`
	Address string `json:"address"`
}

// DirectoryCache holds the full company listing as a single JSON value.
// Key format: "directory:companies"
type DirectoryCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewDirectoryCache creates a DirectoryCache backed by the given RedisClient.
func NewDirectoryCache(r *RedisClient) *DirectoryCache {
	return &DirectoryCache{client: r, ttl: DirectoryCacheTTL}
}

// Get returns the cached listing or ErrCacheMiss.
func (c *DirectoryCache) Get(ctx context.Context) ([]CachedCompany, error) {
	data, err := c.client.Client().Get(ctx, directoryCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var companies []CachedCompany
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return companies, nil
}

// Set replaces the cached listing.
func (c *DirectoryCache) Set(ctx context.Context, companies []CachedCompany) error {
	data, err := json.Marshal(companies)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, directoryCacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing. Called after every directory mutation.
func (c *DirectoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Client().Del(ctx, directoryCacheKey).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

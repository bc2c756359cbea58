// Package cache holds the Redis-backed cache for web search results.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/matteomarino16/telegram-audio-bot/logger"
	"github.com/matteomarino16/telegram-audio-bot/model"

	"github.com/go-redis/redis/v8"
)

// SearchCache caches track search results keyed by the lowercased query.
// A nil client disables the cache; every lookup is then a miss.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache creates a SearchCache. client may be nil.
func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{client: client, ttl: ttl}
}

// Key builds the cache key for a query.
func Key(query string) string {
	return "search:" + strings.ToLower(strings.TrimSpace(query))
}

// Get returns the cached results for query, or ok=false on a miss.
func (c *SearchCache) Get(ctx context.Context, query string) ([]*model.Track, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, Key(query)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Search cache read failed", logger.ErrorField(err))
		}
		return nil, false
	}

	var tracks []*model.Track
	if err := json.Unmarshal([]byte(val), &tracks); err != nil {
		logger.Warn("Search cache entry corrupt, ignoring", logger.ErrorField(err))
		return nil, false
	}
	return tracks, true
}

// Set stores the results for query. Failures are logged, never fatal.
func (c *SearchCache) Set(ctx context.Context, query string, tracks []*model.Track) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(tracks)
	if err != nil {
		logger.Warn("Failed to marshal search cache entry", logger.ErrorField(err))
		return
	}

	if err := c.client.Set(ctx, Key(query), data, c.ttl).Err(); err != nil {
		logger.Warn("Search cache write failed", logger.ErrorField(err))
	}
}

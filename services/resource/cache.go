package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ablecare/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ListCache caches public listing pages in Redis. Keys carry a per-kind
// version counter; invalidation bumps the counter so stale pages simply age
// out of the keyspace via TTL. A nil *ListCache disables caching.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a ListCache with the given TTL per cached page.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	return &ListCache{client: client, ttl: ttl}
}

type cachedPage struct {
	Data []models.ContentResource `json:"data"`
	Meta models.Pagination        `json:"meta"`
}

func (c *ListCache) version(ctx context.Context, kind models.Kind) int64 {
	ver, err := c.client.Get(ctx, "public:"+kind.Name+":ver").Int64()
	if err != nil && err != redis.Nil {
		zap.L().Warn("list cache version read failed", zap.Error(err))
	}
	return ver
}

func (c *ListCache) key(ctx context.Context, kind models.Kind, page, limit int) string {
	return fmt.Sprintf("public:%s:v%d:p%d:l%d", kind.Name, c.version(ctx, kind), page, limit)
}

// Get returns the cached page if present.
func (c *ListCache) Get(ctx context.Context, kind models.Kind, page, limit int) ([]models.ContentResource, models.Pagination, bool) {
	if c == nil {
		return nil, models.Pagination{}, false
	}
	raw, err := c.client.Get(ctx, c.key(ctx, kind, page, limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("list cache read failed", zap.Error(err))
		}
		return nil, models.Pagination{}, false
	}
	var cached cachedPage
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, models.Pagination{}, false
	}
	return cached.Data, cached.Meta, true
}

// Set stores one listing page.
func (c *ListCache) Set(ctx context.Context, kind models.Kind, page, limit int, data []models.ContentResource, meta models.Pagination) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(cachedPage{Data: data, Meta: meta})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(ctx, kind, page, limit), raw, c.ttl).Err(); err != nil {
		zap.L().Warn("list cache write failed", zap.Error(err))
	}
}

// Invalidate bumps the kind's version counter, orphaning all cached pages.
func (c *ListCache) Invalidate(ctx context.Context, kind models.Kind) {
	if c == nil {
		return
	}
	if err := c.client.Incr(ctx, "public:"+kind.Name+":ver").Err(); err != nil {
		zap.L().Warn("list cache invalidation failed", zap.Error(err))
	}
}

// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"briefing_backend/internal/feature/news/domain/entity"
	"briefing_backend/internal/feature/news/usecase"
)

// CachingSearchRepository decorates a SearchRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingSearchRepository struct {
	inner     usecase.SearchRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingSearchRepositoryがSearchRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.SearchRepository = (*CachingSearchRepository)(nil)

// NewCachingSearchRepository decorates a SearchRepository with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "news".
func NewCachingSearchRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SearchRepository, namespace string) *CachingSearchRepository {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if namespace == "" {
		namespace = "news"
	}
	return &CachingSearchRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Search retrieves articles, checking cache first then falling back to the provider.
func (c *CachingSearchRepository) Search(ctx context.Context, query string, limit int, startPublished time.Time) ([]entity.RawArticle, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Search(ctx, query, limit, startPublished)
	}

	key := c.cacheKey(query, limit, startPublished)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.RawArticle
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the provider
	out, err := c.inner.Search(ctx, query, limit, startPublished)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
// startPublishedは時間単位で丸め、検索窓のスライドでキーが毎回変わるのを防ぎます。
func (c *CachingSearchRepository) cacheKey(query string, limit int, startPublished time.Time) string {
	return fmt.Sprintf("%s:%s:%d:%d",
		c.namespace,
		safe(query),
		limit,
		startPublished.UTC().Truncate(time.Hour).Unix(),
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}

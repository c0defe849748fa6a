package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	domain "github.com/amanmaurya001/backend-test/internal/entity"
	"github.com/amanmaurya001/backend-test/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// CatalogCache is a read-through cache over a CatalogRepo for single-code
// lookups. Batched lookups stay on the inner repo: one SQL round trip beats
// N cache probes with partial hits.
type CatalogCache struct {
	inner usecase.CatalogRepo
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCatalogCache(inner usecase.CatalogRepo, rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CatalogCache) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	key := "catalog:code:" + code

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var p domain.Product
		if err := json.Unmarshal(raw, &p); err == nil {
			return &p, nil
		}
		// unreadable entry: fall through and repopulate
	} else if !errors.Is(err, redis.Nil) {
		// cache unavailable; serve from the repo
		return c.inner.FindByCode(ctx, code)
	}

	p, err := c.inner.FindByCode(ctx, code)
	if err != nil || p == nil {
		return p, err
	}
	if b, err := json.Marshal(p); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return p, nil
}

func (c *CatalogCache) FindByCodes(ctx context.Context, codes []string) ([]domain.Product, error) {
	return c.inner.FindByCodes(ctx, codes)
}

func (c *CatalogCache) ListAll(ctx context.Context) ([]domain.Product, error) {
	return c.inner.ListAll(ctx)
}

var _ usecase.CatalogRepo = (*CatalogCache)(nil)

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shopkart/commerce-api/internal/core/domain"
	"github.com/shopkart/commerce-api/internal/core/ports"
)

const defaultCacheTTL = time.Minute

// CatalogCache is a read-through cache for catalog listings. Every failure
// degrades to a miss; the cache never makes a request fail.
// Key format: catalog:<category>:<brand>:<in_stock>:<page>:<page_size>
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewCatalogCache wraps the given Redis client. A non-positive ttl falls
// back to one minute.
func NewCatalogCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *CatalogCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CatalogCache{client: client, ttl: ttl, log: log}
}

func (c *CatalogCache) GetList(ctx context.Context, filter ports.ProductFilter) ([]domain.Product, bool) {
	raw, err := c.client.Get(ctx, c.key(filter)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Msg("catalog cache read failed")
		}
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache decode failed")
		return nil, false
	}
	return products, true
}

func (c *CatalogCache) SetList(ctx context.Context, filter ports.ProductFilter, products []domain.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.log.Warn().Err(err).Msg("catalog cache encode failed")
		return
	}
	if err := c.client.Set(ctx, c.key(filter), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache write failed")
	}
}

func (c *CatalogCache) key(filter ports.ProductFilter) string {
	inStock := "any"
	if filter.InStock != nil {
		inStock = fmt.Sprintf("%t", *filter.InStock)
	}
	return fmt.Sprintf("catalog:%s:%s:%s:%d:%d",
		filter.Category, filter.Brand, inStock, filter.Page, filter.PageSize)
}

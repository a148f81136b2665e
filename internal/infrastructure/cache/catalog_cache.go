package cache

import (
	"context"
	"errors"
	"time"

	"loja_merch/internal/infrastructure/observability"
	"loja_merch/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	shirtTypeKeyPrefix    = "catalog:shirt_type:"
	patchUnitPriceKey     = "catalog:patch_unit_price"
	personalizationFeeKey = "catalog:personalization_fee"
)

// Store is the subset of the redis client the catalog cache needs.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CatalogCache serves catalog prices from Redis and falls back to the
// underlying provider on a miss. Redis failures never fail a lookup.
// Unknown shirt types are not cached.
type CatalogCache struct {
	next   interfaces.ICatalogProvider
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

var _ interfaces.ICatalogProvider = (*CatalogCache)(nil)

func NewCatalogCache(next interfaces.ICatalogProvider, store Store, ttl time.Duration, logger *zap.Logger) *CatalogCache {
	return &CatalogCache{next: next, store: store, ttl: ttl, logger: observability.OrNop(logger)}
}

func (c *CatalogCache) GetShirtTypePrice(ctx context.Context, id string) (decimal.Decimal, bool, error) {
	key := shirtTypeKeyPrefix + id
	if price, ok := c.lookup(ctx, key); ok {
		return price, true, nil
	}

	price, found, err := c.next.GetShirtTypePrice(ctx, id)
	if err != nil || !found {
		return price, found, err
	}
	c.remember(ctx, key, price)
	return price, true, nil
}

func (c *CatalogCache) GetPatchUnitPrice(ctx context.Context) (decimal.Decimal, error) {
	return c.cached(ctx, patchUnitPriceKey, c.next.GetPatchUnitPrice)
}

func (c *CatalogCache) GetPersonalizationFee(ctx context.Context) (decimal.Decimal, error) {
	return c.cached(ctx, personalizationFeeKey, c.next.GetPersonalizationFee)
}

func (c *CatalogCache) cached(ctx context.Context, key string, load func(context.Context) (decimal.Decimal, error)) (decimal.Decimal, error) {
	if v, ok := c.lookup(ctx, key); ok {
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	c.remember(ctx, key, v)
	return v, nil
}

func (c *CatalogCache) lookup(ctx context.Context, key string) (decimal.Decimal, bool) {
	raw, err := c.store.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return decimal.Decimal{}, false
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		c.logger.Warn("catalog cache holds malformed price", zap.String("key", key), zap.String("value", raw))
		return decimal.Decimal{}, false
	}
	return v, true
}

func (c *CatalogCache) remember(ctx context.Context, key string, v decimal.Decimal) {
	if err := c.store.Set(ctx, key, v.String(), c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

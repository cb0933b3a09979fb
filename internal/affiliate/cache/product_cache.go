package cache

import (
	"context"
	"encoding/json"
	"time"

	"affiliate-redirect/internal/affiliate/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const productCachePrefix = "product:"

// ProductCache defines the interface for product lookup caching.
// Implementations should handle cache misses gracefully by returning nil, nil.
type ProductCache interface {
	// Get retrieves an active product by the reference it was looked up with.
	// Returns nil, nil on a miss.
	Get(ctx context.Context, reference string) (*domain.Product, error)

	// Set stores a product under reference.
	Set(ctx context.Context, reference string, product *domain.Product) error
}

// Compile-time interface checks
var (
	_ ProductCache = (*RedisProductCache)(nil)
	_ ProductCache = (*noopProductCache)(nil)
)

// RedisProductCache implements ProductCache using Redis.
type RedisProductCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewProductCache creates a new Redis-based product cache.
// Returns a no-op cache if the Redis client is nil.
func NewProductCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) ProductCache {
	if rdb == nil {
		return &noopProductCache{}
	}
	return &RedisProductCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisProductCache) cacheKey(reference string) string {
	return productCachePrefix + reference
}

// Get retrieves a product from Redis. Errors are logged and reported as misses.
func (c *RedisProductCache) Get(ctx context.Context, reference string) (*domain.Product, error) {
	data, err := c.rdb.Get(ctx, c.cacheKey(reference)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		c.logger.Warn("failed to get product from cache", zap.String("reference", reference), zap.Error(err))
		return nil, nil
	}

	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		c.logger.Warn("failed to unmarshal cached product", zap.String("reference", reference), zap.Error(err))
		return nil, nil
	}
	return &product, nil
}

// Set stores a product in Redis with the configured TTL.
func (c *RedisProductCache) Set(ctx context.Context, reference string, product *domain.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		c.logger.Warn("failed to marshal product for cache", zap.Int64("product_id", product.ID), zap.Error(err))
		return nil
	}

	if err := c.rdb.Set(ctx, c.cacheKey(reference), data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache product", zap.Int64("product_id", product.ID), zap.Error(err))
	}
	return nil
}

// noopProductCache is used when Redis is not configured.
type noopProductCache struct{}

func (noopProductCache) Get(context.Context, string) (*domain.Product, error) {
	return nil, nil
}

func (noopProductCache) Set(context.Context, string, *domain.Product) error {
	return nil
}

package cache

import (
	"context"

	"affiliate-redirect/internal/affiliate/domain"
	"affiliate-redirect/internal/affiliate/usecase"
)

// Compile-time interface check
var _ usecase.ProductRepository = (*CachedProductRepository)(nil)

// CachedProductRepository wraps a ProductRepository with a read-through cache.
// Only hits are cached; misses and store errors always go to the store.
type CachedProductRepository struct {
	repo  usecase.ProductRepository
	cache ProductCache
}

// NewCachedProductRepository creates a new cached repository wrapper.
func NewCachedProductRepository(repo usecase.ProductRepository, cache ProductCache) *CachedProductRepository {
	return &CachedProductRepository{
		repo:  repo,
		cache: cache,
	}
}

// FindActive retrieves a product, checking cache first.
func (r *CachedProductRepository) FindActive(ctx context.Context, reference string) (*domain.Product, error) {
	if cached, err := r.cache.Get(ctx, reference); err == nil && cached != nil {
		return cached, nil
	}

	p, err := r.repo.FindActive(ctx, reference)
	if err != nil || p == nil {
		return p, err
	}

	_ = r.cache.Set(ctx, reference, p)
	return p, nil
}

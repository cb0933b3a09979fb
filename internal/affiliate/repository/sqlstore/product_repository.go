package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"affiliate-redirect/internal/affiliate/database"
	"affiliate-redirect/internal/affiliate/domain"
	"affiliate-redirect/internal/affiliate/usecase"
)

const findActiveBySlug = `SELECT id, COALESCE(slug, ''), title, affiliate_url, is_active
FROM products
WHERE slug = ? AND is_active = ?
LIMIT 1`

// An id match beats a slug that happens to look numeric.
const findActiveByIDOrSlug = `SELECT id, COALESCE(slug, ''), title, affiliate_url, is_active
FROM products
WHERE (id = ? OR slug = ?) AND is_active = ?
ORDER BY CASE WHEN id = ? THEN 0 ELSE 1 END
LIMIT 1`

// ProductRepository implements the usecase.ProductRepository interface over database/sql
type ProductRepository struct {
	db *database.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *database.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Ensure ProductRepository implements usecase.ProductRepository at compile time
var _ usecase.ProductRepository = (*ProductRepository)(nil)

// FindActive retrieves an active product by numeric id or slug
func (r *ProductRepository) FindActive(ctx context.Context, reference string) (*domain.Product, error) {
	var row *sql.Row
	if id, err := strconv.ParseInt(reference, 10, 64); err == nil {
		row = r.db.QueryRowContext(ctx, r.db.Dialect.Rebind(findActiveByIDOrSlug), id, reference, true, id)
	} else {
		row = r.db.QueryRowContext(ctx, r.db.Dialect.Rebind(findActiveBySlug), reference, true)
	}

	var p domain.Product
	if err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.DestinationURL, &p.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

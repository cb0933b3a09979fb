package usecase

import (
	"context"

	"affiliate-redirect/internal/affiliate/domain"
)

// GroupCount is a click count for one value of a grouped column.
type GroupCount struct {
	Value string
	Count int64
}

type ProductRepository interface {
	// FindActive looks a product up by opaque reference, active rows only.
	// Returns domain.ErrProductNotFound when nothing matches.
	FindActive(ctx context.Context, reference string) (*domain.Product, error)
}

type ClickRepository interface {
	// Insert appends a click and sets its ID.
	Insert(ctx context.Context, click *domain.Click) error
	// CountByProduct returns total clicks for a product.
	CountByProduct(ctx context.Context, productID int64) (int64, error)
	// CountByDevice returns click counts grouped by device.
	CountByDevice(ctx context.Context, productID int64) ([]GroupCount, error)
	// CountByCountry returns click counts grouped by country.
	CountByCountry(ctx context.Context, productID int64) ([]GroupCount, error)
}

// CountryResolver maps a client address to an ISO country code, "" if unknown.
type CountryResolver interface {
	ResolveCountry(ip string) string
}

package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"affiliate-redirect/internal/affiliate/database"
	"affiliate-redirect/internal/affiliate/domain"
	"affiliate-redirect/internal/affiliate/usecase"
)

const insertClick = `INSERT INTO clicks
    (event_id, product_id, article_id, ip_hash, user_agent, referrer, country, device, clicked_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id`

const countClicksByProduct = `SELECT COUNT(*) FROM clicks WHERE product_id = ?`

const countByDevice = `SELECT device, COUNT(*) AS n
FROM clicks
WHERE product_id = ?
GROUP BY device
ORDER BY n DESC, device`

const countByCountry = `SELECT country, COUNT(*) AS n
FROM clicks
WHERE product_id = ?
GROUP BY country
ORDER BY n DESC, country`

// ClickRepository implements the usecase.ClickRepository interface over database/sql.
// It only ever appends; there is no update or delete path.
type ClickRepository struct {
	db *database.DB
}

// NewClickRepository creates a new click repository
func NewClickRepository(db *database.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

// Ensure ClickRepository implements usecase.ClickRepository at compile time
var _ usecase.ClickRepository = (*ClickRepository)(nil)

// Insert appends a click and sets its generated ID
func (r *ClickRepository) Insert(ctx context.Context, click *domain.Click) error {
	var articleID sql.NullInt64
	if click.ArticleID != nil {
		articleID = sql.NullInt64{Int64: *click.ArticleID, Valid: true}
	}

	return r.db.QueryRowContext(ctx, r.db.Dialect.Rebind(insertClick),
		click.EventID,
		click.ProductID,
		articleID,
		click.IPHash,
		click.UserAgent,
		click.Referrer,
		click.Country,
		string(click.Device),
		r.bindTime(click.ClickedAt),
	).Scan(&click.ID)
}

// SQLite has no native timestamp type; RFC 3339 text in UTC sorts correctly.
func (r *ClickRepository) bindTime(t time.Time) any {
	if r.db.Dialect == database.DialectPostgres {
		return t.UTC()
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// CountByProduct returns the total number of clicks for a product
func (r *ClickRepository) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, r.db.Dialect.Rebind(countClicksByProduct), productID).Scan(&n)
	return n, err
}

// CountByDevice returns click counts grouped by device
func (r *ClickRepository) CountByDevice(ctx context.Context, productID int64) ([]usecase.GroupCount, error) {
	return r.groupCounts(ctx, countByDevice, productID)
}

// CountByCountry returns click counts grouped by country
func (r *ClickRepository) CountByCountry(ctx context.Context, productID int64) ([]usecase.GroupCount, error) {
	return r.groupCounts(ctx, countByCountry, productID)
}

func (r *ClickRepository) groupCounts(ctx context.Context, query string, productID int64) ([]usecase.GroupCount, error) {
	rows, err := r.db.QueryContext(ctx, r.db.Dialect.Rebind(query), productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []usecase.GroupCount{}
	for rows.Next() {
		var g usecase.GroupCount
		if err := rows.Scan(&g.Value, &g.Count); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

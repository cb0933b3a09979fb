package sqlstore

import (
	"testing"

	"affiliate-redirect/internal/affiliate/database"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *database.DB {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// Run migrations
	err = database.RunMigrations(db)
	require.NoError(t, err)

	return db
}

func seedProduct(t *testing.T, db *database.DB, slug any, title, url string, active bool) int64 {
	var id int64
	err := db.QueryRow(
		"INSERT INTO products (slug, title, affiliate_url, is_active) VALUES (?, ?, ?, ?) RETURNING id",
		slug, title, url, active,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

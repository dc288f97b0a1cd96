package repository

import (
	"context"
	"testing"

	"openfood/internal/config"
	"openfood/internal/database"
	"openfood/internal/model"
	"openfood/internal/schema"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens a private in-memory SQLite database with the schema in place.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	ctx := context.Background()

	cfg := config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		SQLitePath:      ":memory:",
		MaxConnections:  1,
		MinConnections:  1,
		MaxConnLifetime: 300,
	}

	db, err := database.Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	require.NoError(t, schema.NewManager(db.DB, zerolog.Nop()).Ensure(ctx))

	return db
}

// seedProducts inserts test products into the database.
func seedProducts(t *testing.T, db *database.DB, products ...model.Product) {
	t.Helper()

	for i := range products {
		_, err := db.NewInsert().Model(&products[i]).Exec(context.Background())
		require.NoError(t, err)
	}
}

// seedCategories inserts categories by name and returns them with their IDs.
func seedCategories(t *testing.T, db *database.DB, names ...string) []model.Category {
	t.Helper()

	categories := make([]model.Category, 0, len(names))
	for _, name := range names {
		c := model.Category{CategoryName: name}
		_, err := db.NewInsert().Model(&c).Exec(context.Background())
		require.NoError(t, err)
		categories = append(categories, c)
	}
	return categories
}

// seedStores inserts stores by name and returns them with their IDs.
func seedStores(t *testing.T, db *database.DB, names ...string) []model.Store {
	t.Helper()

	stores := make([]model.Store, 0, len(names))
	for _, name := range names {
		s := model.Store{StoreName: name}
		_, err := db.NewInsert().Model(&s).Exec(context.Background())
		require.NoError(t, err)
		stores = append(stores, s)
	}
	return stores
}

// countRows counts rows of model matching where.
func countRows(t *testing.T, db *database.DB, mdl interface{}, where string, args ...interface{}) int {
	t.Helper()

	n, err := db.NewSelect().Model(mdl).Where(where, args...).Count(context.Background())
	require.NoError(t, err)
	return n
}

package repository

import (
	"context"

	"openfood/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a product under its caller-supplied ID. An existing ID
	// is rejected with model.ErrDuplicateProduct, never overwritten.
	Create(ctx context.Context, product *model.Product) error

	// GetByID retrieves a single product with its categories and stores.
	// Returns nil when the product does not exist.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Delete removes a product. Association rows referencing it make the
	// delete fail with model.ErrReferenceViolation.
	Delete(ctx context.Context, id int64) error

	// AddCategories links a product to the given categories.
	AddCategories(ctx context.Context, productID int64, categoryIDs ...int64) error

	// AddStores links a product to the given stores.
	AddStores(ctx context.Context, productID int64, storeIDs ...int64) error

	// Categories returns the categories linked to a product, by name.
	Categories(ctx context.Context, productID int64) ([]model.Category, error)

	// Stores returns the stores linked to a product, by name.
	Stores(ctx context.Context, productID int64) ([]model.Store, error)
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	GetByName(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context, limit, offset int) ([]model.Category, error)
	Delete(ctx context.Context, id int64) error

	// Products returns the products linked to a category.
	Products(ctx context.Context, categoryID int64) ([]model.Product, error)
}

// StoreRepository defines the interface for store data access operations.
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	GetByName(ctx context.Context, name string) (*model.Store, error)
	List(ctx context.Context, limit, offset int) ([]model.Store, error)
	Delete(ctx context.Context, id int64) error

	// Products returns the products linked to a store.
	Products(ctx context.Context, storeID int64) ([]model.Product, error)
}

// FavoriteRepository defines the interface for saved substitutions.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	GetByID(ctx context.Context, id int64) (*model.Favorite, error)
	List(ctx context.Context, limit, offset int) ([]model.Favorite, error)

	// ListByOrigin returns every substitution saved for an origin product.
	ListByOrigin(ctx context.Context, origin string) ([]model.Favorite, error)

	Delete(ctx context.Context, id int64) error
}

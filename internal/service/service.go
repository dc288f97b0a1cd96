package service

import (
	"context"

	"openfood/internal/model"
)

// CatalogService defines catalogue operations that span several tables.
type CatalogService interface {
	// SaveProduct stores a product and links it to the named categories and
	// stores, creating the names not seen before. All writes happen in one
	// transaction.
	SaveProduct(ctx context.Context, product *model.Product, categoryNames, storeNames []string) error

	// GetProduct retrieves a product with its categories and stores.
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
}

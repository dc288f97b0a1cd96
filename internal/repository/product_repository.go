package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"openfood/internal/model"

	"github.com/rs/zerolog"
	"github.com/uptrace/bun"
)

// productRepository implements the ProductRepository interface using bun.
type productRepository struct {
	db     bun.IDB
	logger zerolog.Logger
}

// NewProductRepository creates a new product repository. db may be a
// *bun.DB or a transaction.
func NewProductRepository(db bun.IDB, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		db:     db,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a product under its caller-supplied ID.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	_, err := r.db.NewInsert().Model(product).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Int64("product_id", product.ID).Msg("product already exists")
			return model.ErrDuplicateProduct
		}
		r.logger.Error().Err(err).Int64("product_id", product.ID).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().
		Int64("product_id", product.ID).
		Str("product_name", product.ProductName).
		Msg("product created successfully")

	return nil
}

// GetByID retrieves a single product with its categories and stores.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product := &model.Product{ID: id}

	err := r.db.NewSelect().
		Model(product).
		WherePK().
		Relation("Categories").
		Relation("Stores").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return product, nil
}

// Delete removes a product.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*model.Product)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		if isForeignKeyViolation(err) {
			r.logger.Warn().Int64("product_id", id).Msg("product is still linked")
			return model.ErrReferenceViolation
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return checkDeleted(res, model.ErrProductNotFound)
}

// AddCategories links a product to the given categories.
func (r *productRepository) AddCategories(ctx context.Context, productID int64, categoryIDs ...int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]model.ProductCategory, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		links = append(links, model.ProductCategory{ProductID: productID, CategoryID: id})
	}

	if _, err := r.db.NewInsert().Model(&links).Exec(ctx); err != nil {
		if isForeignKeyViolation(err) {
			r.logger.Warn().
				Int64("product_id", productID).
				Ints64("category_ids", categoryIDs).
				Msg("product or category does not exist")
			return model.ErrReferenceViolation
		}
		r.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to link categories")
		return fmt.Errorf("failed to link categories: %w", err)
	}

	r.logger.Debug().
		Int64("product_id", productID).
		Int("count", len(links)).
		Msg("categories linked successfully")

	return nil
}

// AddStores links a product to the given stores.
func (r *productRepository) AddStores(ctx context.Context, productID int64, storeIDs ...int64) error {
	if len(storeIDs) == 0 {
		return nil
	}

	links := make([]model.ProductStore, 0, len(storeIDs))
	for _, id := range storeIDs {
		links = append(links, model.ProductStore{ProductID: productID, StoreID: id})
	}

	if _, err := r.db.NewInsert().Model(&links).Exec(ctx); err != nil {
		if isForeignKeyViolation(err) {
			r.logger.Warn().
				Int64("product_id", productID).
				Ints64("store_ids", storeIDs).
				Msg("product or store does not exist")
			return model.ErrReferenceViolation
		}
		r.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to link stores")
		return fmt.Errorf("failed to link stores: %w", err)
	}

	r.logger.Debug().
		Int64("product_id", productID).
		Int("count", len(links)).
		Msg("stores linked successfully")

	return nil
}

// Categories returns the categories linked to a product, by name.
func (r *productRepository) Categories(ctx context.Context, productID int64) ([]model.Category, error) {
	categories := []model.Category{}

	err := r.db.NewSelect().
		Model(&categories).
		Join("JOIN product_category AS pc ON pc.category_id = c.id").
		Where("pc.product_id = ?", productID).
		Order("c.category_name").
		Scan(ctx)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to query product categories")
		return nil, fmt.Errorf("failed to query product categories: %w", err)
	}

	return categories, nil
}

// Stores returns the stores linked to a product, by name.
func (r *productRepository) Stores(ctx context.Context, productID int64) ([]model.Store, error) {
	stores := []model.Store{}

	err := r.db.NewSelect().
		Model(&stores).
		Join("JOIN product_store AS ps ON ps.store_id = s.id").
		Where("ps.product_id = ?", productID).
		Order("s.store_name").
		Scan(ctx)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to query product stores")
		return nil, fmt.Errorf("failed to query product stores: %w", err)
	}

	return stores, nil
}

// checkDeleted turns a delete that matched no row into notFound.
func checkDeleted(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

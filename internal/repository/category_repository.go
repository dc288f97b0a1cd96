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

// categoryRepository implements the CategoryRepository interface using bun.
type categoryRepository struct {
	db     bun.IDB
	logger zerolog.Logger
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db bun.IDB, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// Create inserts a category and fills in its generated ID.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	_, err := r.db.NewInsert().Model(category).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("category_name", category.CategoryName).Msg("category already exists")
			return model.ErrDuplicateCategory
		}
		r.logger.Error().Err(err).Str("category_name", category.CategoryName).Msg("failed to create category")
		return fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Debug().
		Int64("category_id", category.ID).
		Str("category_name", category.CategoryName).
		Msg("category created successfully")

	return nil
}

// GetByID retrieves a single category by its ID.
func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	category := &model.Category{ID: id}

	err := r.db.NewSelect().Model(category).WherePK().Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug().Int64("category_id", id).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return category, nil
}

// GetByName retrieves a single category by its unique name.
func (r *categoryRepository) GetByName(ctx context.Context, name string) (*model.Category, error) {
	category := new(model.Category)

	err := r.db.NewSelect().
		Model(category).
		Where("c.category_name = ?", name).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug().Str("category_name", name).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("category_name", name).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return category, nil
}

// List retrieves categories ordered by name with pagination support.
func (r *categoryRepository) List(ctx context.Context, limit, offset int) ([]model.Category, error) {
	limit, offset = normalizeLimit(limit, offset)
	categories := []model.Category{}

	err := r.db.NewSelect().
		Model(&categories).
		Order("c.category_name").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// Delete removes a category. Links to products are not removed, so a
// linked category cannot be deleted.
func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*model.Category)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		if isForeignKeyViolation(err) {
			r.logger.Warn().Int64("category_id", id).Msg("category is still linked to products")
			return model.ErrReferenceViolation
		}
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return checkDeleted(res, model.ErrCategoryNotFound)
}

// Products returns the products linked to a category, by name.
func (r *categoryRepository) Products(ctx context.Context, categoryID int64) ([]model.Product, error) {
	products := []model.Product{}

	err := r.db.NewSelect().
		Model(&products).
		Join("JOIN product_category AS pc ON pc.product_id = p.id").
		Where("pc.category_id = ?", categoryID).
		Order("p.product_name").
		Scan(ctx)
	if err != nil {
		r.logger.Error().Err(err).Int64("category_id", categoryID).Msg("failed to query category products")
		return nil, fmt.Errorf("failed to query category products: %w", err)
	}

	return products, nil
}

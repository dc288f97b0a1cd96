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

// storeRepository implements the StoreRepository interface using bun.
type storeRepository struct {
	db     bun.IDB
	logger zerolog.Logger
}

// NewStoreRepository creates a new store repository.
func NewStoreRepository(db bun.IDB, logger zerolog.Logger) StoreRepository {
	return &storeRepository{
		db:     db,
		logger: logger.With().Str("repository", "store").Logger(),
	}
}

// Create inserts a store and fills in its generated ID.
func (r *storeRepository) Create(ctx context.Context, store *model.Store) error {
	_, err := r.db.NewInsert().Model(store).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("store_name", store.StoreName).Msg("store already exists")
			return model.ErrDuplicateStore
		}
		r.logger.Error().Err(err).Str("store_name", store.StoreName).Msg("failed to create store")
		return fmt.Errorf("failed to create store: %w", err)
	}

	r.logger.Debug().
		Int64("store_id", store.ID).
		Str("store_name", store.StoreName).
		Msg("store created successfully")

	return nil
}

// GetByID retrieves a single store by its ID.
func (r *storeRepository) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	store := &model.Store{ID: id}

	err := r.db.NewSelect().Model(store).WherePK().Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug().Int64("store_id", id).Msg("store not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("store_id", id).Msg("failed to query store")
		return nil, fmt.Errorf("failed to query store: %w", err)
	}

	return store, nil
}

// GetByName retrieves a single store by its unique name.
func (r *storeRepository) GetByName(ctx context.Context, name string) (*model.Store, error) {
	store := new(model.Store)

	err := r.db.NewSelect().
		Model(store).
		Where("s.store_name = ?", name).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug().Str("store_name", name).Msg("store not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("store_name", name).Msg("failed to query store")
		return nil, fmt.Errorf("failed to query store: %w", err)
	}

	return store, nil
}

// List retrieves stores ordered by name with pagination support.
func (r *storeRepository) List(ctx context.Context, limit, offset int) ([]model.Store, error) {
	limit, offset = normalizeLimit(limit, offset)
	stores := []model.Store{}

	err := r.db.NewSelect().
		Model(&stores).
		Order("s.store_name").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query stores")
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}

	return stores, nil
}

// Delete removes a store. Links to products are not removed, so a
// linked store cannot be deleted.
func (r *storeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*model.Store)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		if isForeignKeyViolation(err) {
			r.logger.Warn().Int64("store_id", id).Msg("store is still linked to products")
			return model.ErrReferenceViolation
		}
		r.logger.Error().Err(err).Int64("store_id", id).Msg("failed to delete store")
		return fmt.Errorf("failed to delete store: %w", err)
	}

	return checkDeleted(res, model.ErrStoreNotFound)
}

// Products returns the products linked to a store, by name.
func (r *storeRepository) Products(ctx context.Context, storeID int64) ([]model.Product, error) {
	products := []model.Product{}

	err := r.db.NewSelect().
		Model(&products).
		Join("JOIN product_store AS ps ON ps.product_id = p.id").
		Where("ps.store_id = ?", storeID).
		Order("p.product_name").
		Scan(ctx)
	if err != nil {
		r.logger.Error().Err(err).Int64("store_id", storeID).Msg("failed to query store products")
		return nil, fmt.Errorf("failed to query store products: %w", err)
	}

	return products, nil
}

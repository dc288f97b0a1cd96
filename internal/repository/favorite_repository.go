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

// favoriteRepository implements the FavoriteRepository interface using bun.
type favoriteRepository struct {
	db     bun.IDB
	logger zerolog.Logger
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db bun.IDB, logger zerolog.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:     db,
		logger: logger.With().Str("repository", "favorite").Logger(),
	}
}

// Create saves a substitution. Neither product identifier is checked
// against the product table.
func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	if _, err := r.db.NewInsert().Model(favorite).Exec(ctx); err != nil {
		r.logger.Error().Err(err).
			Str("product_origin", favorite.ProductOrigin).
			Str("product_sub", favorite.ProductSub).
			Msg("failed to create favorite")
		return fmt.Errorf("failed to create favorite: %w", err)
	}

	r.logger.Debug().
		Int64("favorite_id", favorite.ID).
		Str("product_origin", favorite.ProductOrigin).
		Str("product_sub", favorite.ProductSub).
		Msg("favorite created successfully")

	return nil
}

// GetByID retrieves a single favorite by its ID.
func (r *favoriteRepository) GetByID(ctx context.Context, id int64) (*model.Favorite, error) {
	favorite := &model.Favorite{ID: id}

	err := r.db.NewSelect().Model(favorite).WherePK().Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.logger.Debug().Int64("favorite_id", id).Msg("favorite not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("favorite_id", id).Msg("failed to query favorite")
		return nil, fmt.Errorf("failed to query favorite: %w", err)
	}

	return favorite, nil
}

// List retrieves favorites in insertion order with pagination support.
func (r *favoriteRepository) List(ctx context.Context, limit, offset int) ([]model.Favorite, error) {
	limit, offset = normalizeLimit(limit, offset)
	favorites := []model.Favorite{}

	err := r.db.NewSelect().
		Model(&favorites).
		Order("f.id").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query favorites")
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}

	return favorites, nil
}

// ListByOrigin returns every substitution saved for an origin product.
func (r *favoriteRepository) ListByOrigin(ctx context.Context, origin string) ([]model.Favorite, error) {
	favorites := []model.Favorite{}

	err := r.db.NewSelect().
		Model(&favorites).
		Where("f.product_origin = ?", origin).
		Order("f.id").
		Scan(ctx)
	if err != nil {
		r.logger.Error().Err(err).Str("product_origin", origin).Msg("failed to query favorites by origin")
		return nil, fmt.Errorf("failed to query favorites by origin: %w", err)
	}

	return favorites, nil
}

// Delete removes a favorite.
func (r *favoriteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*model.Favorite)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		r.logger.Error().Err(err).Int64("favorite_id", id).Msg("failed to delete favorite")
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return checkDeleted(res, model.ErrFavoriteNotFound)
}

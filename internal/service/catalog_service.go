package service

import (
	"context"
	"fmt"

	"openfood/internal/model"
	"openfood/internal/repository"

	"github.com/rs/zerolog"
	"github.com/uptrace/bun"
)

// catalogService implements CatalogService.
type catalogService struct {
	db          *bun.DB
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service. Reads go through
// productRepo; SaveProduct opens its own transaction on db.
func NewCatalogService(db *bun.DB, productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		db:          db,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// SaveProduct stores a product with its categories and stores.
func (s *catalogService) SaveProduct(ctx context.Context, product *model.Product, categoryNames, storeNames []string) error {
	categoryNames = uniqueNames(categoryNames)
	storeNames = uniqueNames(storeNames)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		products := repository.NewProductRepository(tx, s.logger)

		if err := products.Create(ctx, product); err != nil {
			return err
		}

		categoryIDs, err := s.categoryIDs(ctx, repository.NewCategoryRepository(tx, s.logger), categoryNames)
		if err != nil {
			return err
		}
		if err := products.AddCategories(ctx, product.ID, categoryIDs...); err != nil {
			return err
		}

		storeIDs, err := s.storeIDs(ctx, repository.NewStoreRepository(tx, s.logger), storeNames)
		if err != nil {
			return err
		}
		return products.AddStores(ctx, product.ID, storeIDs...)
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", product.ID).Msg("failed to save product")
		return fmt.Errorf("failed to save product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Int("categories", len(categoryNames)).
		Int("stores", len(storeNames)).
		Msg("product saved")

	return nil
}

// GetProduct retrieves a product with its categories and stores.
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

func (s *catalogService) categoryIDs(ctx context.Context, repo repository.CategoryRepository, names []string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		category, err := repo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if category == nil {
			category = &model.Category{CategoryName: name}
			if err := repo.Create(ctx, category); err != nil {
				return nil, err
			}
		}
		ids = append(ids, category.ID)
	}
	return ids, nil
}

func (s *catalogService) storeIDs(ctx context.Context, repo repository.StoreRepository, names []string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		store, err := repo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if store == nil {
			store = &model.Store{StoreName: name}
			if err := repo.Create(ctx, store); err != nil {
				return nil, err
			}
		}
		ids = append(ids, store.ID)
	}
	return ids, nil
}

// uniqueNames drops empty and repeated names, keeping first-seen order.
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

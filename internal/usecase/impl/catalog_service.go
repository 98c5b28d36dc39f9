package impl

import (
	"context"
	"log/slog"

	"organico/config"
	"organico/internal/domain/entity"
	domainerrors "organico/internal/domain/errors"
	"organico/internal/domain/repository"
	"organico/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	listing     *config.ListingConfig
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	var listing *config.ListingConfig
	if params.Config != nil {
		listing = params.Config.Listing
	}

	return &catalogService{
		productRepo: params.ProductRepo,
		listing:     listing,
		logger:      params.Logger,
	}
}

// ListProducts returns active catalog products matching the filters.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	limit := input.Limit
	offset := input.Offset

	defaultSize, maxSize := fallbackPageSize, fallbackMaxPage
	if srv.listing != nil {
		if srv.listing.DefaultPageSize > 0 {
			defaultSize = srv.listing.DefaultPageSize
		}
		if srv.listing.MaxPageSize > 0 {
			maxSize = srv.listing.MaxPageSize
		}
	}
	if limit <= 0 {
		limit = defaultSize
	}
	if limit > maxSize {
		limit = maxSize
	}
	if offset < 0 {
		offset = 0
	}

	products, err := srv.productRepo.List(ctx, &repository.ProductQuery{
		CategoryID: input.CategoryID,
		Search:     input.Search,
		OrderBy:    input.OrderBy,
		Descending: input.Descending,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single active product.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// ListCategories returns all categories ordered by name.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

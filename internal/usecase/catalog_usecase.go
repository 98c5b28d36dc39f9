package usecase

import (
	"context"

	"organico/internal/domain/entity"

	"github.com/google/uuid"
)

// ListProductsInput carries the catalog listing filters.
type ListProductsInput struct {
	CategoryID *uuid.UUID
	Search     string
	OrderBy    string
	Descending bool
	Limit      int
	Offset     int
}

// CatalogUsecase defines the interface for the read-mostly product catalog.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

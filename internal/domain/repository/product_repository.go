package repository

import (
	"context"

	"organico/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductQuery carries filter and ordering options for the catalog listing.
type ProductQuery struct {
	CategoryID *uuid.UUID
	Search     string // Matches name, description and category name.
	OrderBy    string // "name" or "created_at"; defaults to name.
	Descending bool
	Limit      int
	Offset     int
}

// ProductRepository defines the interface for the read-mostly product catalog.
type ProductRepository interface {
	// FindByID retrieves an active product.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves the active products for the given IDs.
	// Returns ErrProductNotFound if any ID does not resolve.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// List returns active products matching the query.
	List(ctx context.Context, query *ProductQuery) ([]*entity.Product, error)

	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

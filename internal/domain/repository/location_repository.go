// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"organico/internal/domain/entity"
	"organico/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a location is not found or not visible.
	ErrLocationNotFound = errors.New("location not found")
	// ErrProductNotFound is returned when a referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")
)

// LocationQuery carries the filter, search and ordering options for listing
// locations. Only active locations are ever eligible.
type LocationQuery struct {
	LocationType       string     // Filter by one of the LocationType constants; empty means all.
	IsVerified         *bool      // Filter by verification flag; nil means all.
	City               string     // Exact city match on the owned address.
	State              string     // Exact state match on the owned address.
	Search             string     // Matches name, description, city, neighborhood and producer business name.
	OrderBy            string     // "created_at" or "name"; empty means newest first.
	Descending         bool       // Sort descending.
	ProducerID         *uuid.UUID // Restrict to a single producer (my-locations listing).
	RequireCoordinates bool       // Exclude rows whose address lacks a complete coordinate pair.
	Limit              int
	Offset             int
}

// LocationRepository defines the interface for location aggregate persistence.
// The aggregate (location + owned address + gallery + product links) is read
// and written as one unit; multi-row writes happen inside a transaction
// provided by TransactionManager.
type LocationRepository interface {
	// Create persists a new location together with its owned address and
	// initial product associations.
	Create(ctx context.Context, location *entity.Location, productIDs []uuid.UUID) error

	// FindByID retrieves the full aggregate regardless of visibility.
	// Used by owner-scoped mutation paths.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindActiveByID retrieves the full aggregate only when it is active.
	// Returns ErrLocationNotFound for inactive or missing rows.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// Update saves the location row and its owned address row.
	Update(ctx context.Context, location *entity.Location) error

	// ReplaceProducts replaces the full product association set.
	// An empty slice clears all associations.
	ReplaceProducts(ctx context.Context, locationID uuid.UUID, productIDs []uuid.UUID) error

	// AddImage appends a gallery image; existing images are never reordered.
	AddImage(ctx context.Context, image *entity.LocationImage) error

	// ListMarkers returns the flattened list/map read model for all active
	// locations matching the query.
	ListMarkers(ctx context.Context, query *LocationQuery) ([]*entity.LocationMarker, error)

	// Delete hard-deletes the location, its address and its images.
	Delete(ctx context.Context, id uuid.UUID) error
}

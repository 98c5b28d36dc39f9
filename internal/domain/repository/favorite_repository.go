package repository

import (
	"context"

	"organico/internal/domain/entity"
	"organico/internal/errors"

	"github.com/google/uuid"
)

// ErrFavoriteExists is returned when creating a favorite that already exists
// for the same (user, location) pair. The composite unique index is the
// correctness backstop for concurrent toggles; this error is how a losing
// writer observes it.
var ErrFavoriteExists = errors.New("favorite already exists")

// FavoriteRepository defines the interface for favorite persistence.
type FavoriteRepository interface {
	// Create persists a new favorite. Returns ErrFavoriteExists when the
	// (user, location) pair is already present.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite for the pair. Returns the number of rows
	// removed (0 when a concurrent toggle already removed it).
	Delete(ctx context.Context, userID, locationID uuid.UUID) (int64, error)

	// Exists reports whether the pair is currently favorited.
	Exists(ctx context.Context, userID, locationID uuid.UUID) (bool, error)

	// ListByUser returns the user's favorites newest first, each with the
	// location's marker-level details resolved.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}

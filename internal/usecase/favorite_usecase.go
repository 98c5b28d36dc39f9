package usecase

import (
	"context"

	"organico/internal/domain/entity"

	"github.com/google/uuid"
)

// ToggleFavoriteOutput reports the state after a toggle: Favorited true means
// the favorite now exists (and is returned), false means it was removed.
type ToggleFavoriteOutput struct {
	Favorited bool
	Favorite  *entity.Favorite
}

// FavoriteUsecase defines the interface for the per-user favorite set.
type FavoriteUsecase interface {
	// Toggle atomically flips the favorite state of the (user, location) pair.
	Toggle(ctx context.Context, userID, locationID uuid.UUID, note string) (*ToggleFavoriteOutput, error)

	// Check reports whether the pair is favorited, without side effects.
	Check(ctx context.Context, userID, locationID uuid.UUID) (bool, error)

	// List returns the user's favorites newest first with location details.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}

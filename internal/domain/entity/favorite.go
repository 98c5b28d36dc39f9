package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a user's bookmark of a location. At most one exists per
// (user, location) pair; the pair is the toggle's atomicity boundary.
type Favorite struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	LocationID uuid.UUID
	Note       string          // Optional free-text note attached when favoriting.
	Location   *LocationMarker // Marker-level details of the location, resolved on listing.
	CreatedAt  time.Time
}

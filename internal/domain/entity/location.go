package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationType enumerates the kinds of places where producers sell.
const (
	LocationTypeFair     = "FAIR"
	LocationTypeStore    = "STORE"
	LocationTypeFarm     = "FARM"
	LocationTypeDelivery = "DELIVERY"
	LocationTypeOther    = "OTHER"
)

// ValidLocationType reports whether t is one of the known location types.
func ValidLocationType(t string) bool {
	switch t {
	case LocationTypeFair, LocationTypeStore, LocationTypeFarm, LocationTypeDelivery, LocationTypeOther:
		return true
	}

	return false
}

// Location is the aggregate root for a selling point. It owns its Address and
// image gallery, and carries a many-to-many association to catalog Products.
// All writes to the aggregate go through a single transaction.
type Location struct {
	ID             uuid.UUID
	ProducerID     uuid.UUID // The owning producer profile (same value as the producer's user ID).
	ProducerName   string    // Business name of the producer, resolved on reads.
	Name           string
	LocationType   string // One of the LocationType constants.
	Description    string
	Address        *Address // Owned 1:1; never shared between locations.
	Products       []*Product
	Images         []*LocationImage // Gallery, ordered by display order then creation time.
	MainImage      string
	OperationDays  string // Free text, e.g. "Segunda a Sábado".
	OperationHours string // Free text, e.g. "7h às 12h".
	Phone          string
	Whatsapp       string
	IsActive       bool // Visibility flag; inactive locations are hidden from all public reads.
	IsVerified     bool // Trust flag, granted administratively. Never writable by the owner.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOwnedBy reports whether the given user owns this location. Ownership is
// the mutation predicate: reads are public, writes require it.
func (l *Location) IsOwnedBy(userID uuid.UUID) bool {
	return l.ProducerID == userID
}

// LocationImage is one entry of a location's gallery.
type LocationImage struct {
	ID           uuid.UUID
	LocationID   uuid.UUID
	Image        string // URL of the stored image object.
	Caption      string
	DisplayOrder int // Non-negative; ties broken by creation time.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LocationMarker is the flattened read model used for lists and map rendering.
// It is derived from the aggregate at read time and never persisted.
type LocationMarker struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	LocationType string    `json:"location_type"`
	ProducerName string    `json:"producer_name"`
	MainImage    string    `json:"main_image,omitempty"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ProductCount int       `json:"product_count"`
	IsVerified   bool      `json:"is_verified"`
}

// HasCoordinates reports whether the marker carries a complete coordinate pair.
func (m *LocationMarker) HasCoordinates() bool {
	return m.Latitude != nil && m.Longitude != nil
}

package usecase

import (
	"context"
	"io"

	"organico/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput carries the full address payload for location creation.
type AddressInput struct {
	Street       string   `json:"street" validate:"required"`
	Number       string   `json:"number"`
	Complement   string   `json:"complement"`
	Neighborhood string   `json:"neighborhood" validate:"required"`
	City         string   `json:"city" validate:"required"`
	State        string   `json:"state" validate:"required,len=2"`
	ZipCode      string   `json:"zip_code" validate:"required"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// AddressUpdateInput carries a partial address payload. Nil fields are left
// untouched by the merge.
type AddressUpdateInput struct {
	Street       *string  `json:"street,omitempty"`
	Number       *string  `json:"number,omitempty"`
	Complement   *string  `json:"complement,omitempty"`
	Neighborhood *string  `json:"neighborhood,omitempty"`
	City         *string  `json:"city,omitempty"`
	State        *string  `json:"state,omitempty"`
	ZipCode      *string  `json:"zip_code,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// CreateLocationInput represents the input for creating a new location.
type CreateLocationInput struct {
	Name           string
	LocationType   string
	Description    string
	Address        *AddressInput
	ProductIDs     []uuid.UUID
	MainImage      string
	OperationDays  string
	OperationHours string
	Phone          string
	Whatsapp       string
}

// UpdateLocationInput represents a partial update of an existing location.
// Nil fields are left untouched. ProductIDs follows replace-set semantics:
// nil leaves the association alone, an empty slice clears it, anything else
// replaces it wholesale.
type UpdateLocationInput struct {
	Name           *string
	LocationType   *string
	Description    *string
	Address        *AddressUpdateInput
	ProductIDs     []uuid.UUID
	MainImage      *string
	OperationDays  *string
	OperationHours *string
	Phone          *string
	Whatsapp       *string
	IsActive       *bool
}

// ListLocationsInput carries the public listing filters.
type ListLocationsInput struct {
	LocationType string
	IsVerified   *bool
	City         string
	State        string
	Search       string
	OrderBy      string
	Descending   bool
	Limit        int
	Offset       int
}

// MapDataInput carries the map read-model filters. The proximity filter is
// applied only when both coordinates are present.
type MapDataInput struct {
	LocationType string
	City         string
	State        string
	Latitude     *float64
	Longitude    *float64
	RadiusKm     *float64
}

// AddImageInput represents a gallery append. Either Body carries the raw
// upload (with ContentType/Filename) or ImageURL points at an already-hosted
// object.
type AddImageInput struct {
	ImageURL     string
	Body         io.Reader
	ContentType  string
	Filename     string
	Caption      string
	DisplayOrder int
}

// LocationUsecase defines the interface for selling-point management.
type LocationUsecase interface {
	// Create registers a new location for the calling producer.
	Create(ctx context.Context, userID uuid.UUID, input *CreateLocationInput) (*entity.Location, error)

	// Update applies a partial update. Only the owner may call it.
	Update(ctx context.Context, userID, locationID uuid.UUID, input *UpdateLocationInput) (*entity.Location, error)

	// Delete removes a location and its dependent rows. Only the owner may
	// call it.
	Delete(ctx context.Context, userID, locationID uuid.UUID) error

	// Get returns the full aggregate of an active location.
	Get(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// List returns the flattened markers matching the filters.
	List(ctx context.Context, input *ListLocationsInput) ([]*entity.LocationMarker, error)

	// MyLocations returns the caller's own markers, active or not.
	MyLocations(ctx context.Context, userID uuid.UUID) ([]*entity.LocationMarker, error)

	// MapData returns markers that carry a complete coordinate pair.
	MapData(ctx context.Context, input *MapDataInput) ([]*entity.LocationMarker, error)

	// AddImage appends a gallery image. Only the owner may call it.
	AddImage(ctx context.Context, userID, locationID uuid.UUID, input *AddImageInput) (*entity.LocationImage, error)

	// ShareQR renders a PNG QR code pointing at the location's public page.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}

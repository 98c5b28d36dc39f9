package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is the physical address owned by exactly one Location. It has no
// lifecycle of its own: it is created, updated and deleted with its parent.
type Address struct {
	ID           uuid.UUID
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string // Two-letter state code, e.g. "PR".
	ZipCode      string
	Latitude     *float64 // Geographic latitude, 6 decimal places. Nil when not geocoded.
	Longitude    *float64 // Geographic longitude, 6 decimal places. Nil when not geocoded.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCoordinates reports whether both latitude and longitude are present.
// A partially geocoded address is treated as having no coordinates at all.
func (a *Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateLocationQR generates a PNG QR code pointing at the public page
	// of a location.
	GenerateLocationQR(locationID uuid.UUID) ([]byte, error)
}

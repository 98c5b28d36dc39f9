package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProducerProfile holds the business metadata of a producer. It shares its
// identity with the owning User (one profile per account).
type ProducerProfile struct {
	UserID                  uuid.UUID // Foreign key to the core User; also the profile's identity.
	BusinessName            string    // The name of the property or business, shown on listings.
	Description             string
	CoverImage              string
	HasOrganicCertification bool
	CertificationDetails    string
	Website                 string
	Instagram               string
	Whatsapp                string
	IsVerified              bool // Trust flag, granted administratively. Never writable by the owner.
	IsActive                bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsOwnedBy reports whether the given user owns this profile.
func (p *ProducerProfile) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}

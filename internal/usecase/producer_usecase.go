package usecase

import (
	"context"

	"organico/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProducerProfileInput represents a partial profile update. Nil fields
// are left untouched. The verification flag is deliberately absent.
type UpdateProducerProfileInput struct {
	BusinessName            *string
	Description             *string
	CoverImage              *string
	HasOrganicCertification *bool
	CertificationDetails    *string
	Website                 *string
	Instagram               *string
	Whatsapp                *string
}

// ProducerUsecase defines the interface for producer profile management.
type ProducerUsecase interface {
	// GetMyProfile returns the caller's own producer profile.
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*entity.ProducerProfile, error)

	// UpdateMyProfile applies a partial update to the caller's own profile.
	UpdateMyProfile(ctx context.Context, userID uuid.UUID, input *UpdateProducerProfileInput) (*entity.ProducerProfile, error)

	// EnsureProfile provisions a profile for the user if none exists yet.
	// It is idempotent and safe to call on every producer registration.
	EnsureProfile(ctx context.Context, userID uuid.UUID, businessName string) (*entity.ProducerProfile, error)
}

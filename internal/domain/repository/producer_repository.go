package repository

import (
	"context"

	"organico/internal/domain/entity"
	"organico/internal/errors"

	"github.com/google/uuid"
)

// ErrProducerNotFound is returned when a user has no producer profile.
var ErrProducerNotFound = errors.New("producer profile not found")

// ProducerRepository defines the interface for producer profile persistence.
type ProducerRepository interface {
	// Create persists a new producer profile for a user.
	Create(ctx context.Context, profile *entity.ProducerProfile) error

	// FindByUserID retrieves the profile owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProducerProfile, error)

	// Update saves an existing profile.
	Update(ctx context.Context, profile *entity.ProducerProfile) error
}

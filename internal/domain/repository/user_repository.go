package repository

import (
	"context"

	"organico/internal/domain/entity"
	"organico/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering with an email that is already in use.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID, preloading the producer profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, preloading the producer profile.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists changes to an existing user's account fields.
	Update(ctx context.Context, user *entity.User) error
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"organico/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// BusinessName is only meaningful for producer registrations.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Phone        string
	UserType     string
	BusinessName string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateUserInput represents a partial update of the caller's own account.
// Nil fields are left untouched.
type UpdateUserInput struct {
	Name   *string
	Phone  *string
	Avatar *string
}

// --- Output DTOs ---

// AuthOutput returns the generated token pair and the authenticated user.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh exchanges a valid refresh token for a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// GetMe returns the caller's own account.
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateMe applies a partial update to the caller's own account.
	UpdateMe(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*entity.User, error)
}

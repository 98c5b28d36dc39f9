package impl

import (
	"context"
	"log/slog"

	deliverycontext "organico/internal/delivery/context"
	"organico/internal/domain/entity"
	domainerrors "organico/internal/domain/errors"
	"organico/internal/domain/repository"
	"organico/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// producerService implements the ProducerUsecase interface.
type producerService struct {
	producerRepo repository.ProducerRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// ProducerServiceParams holds dependencies for producerService, injected by Fx.
type ProducerServiceParams struct {
	fx.In

	ProducerRepo repository.ProducerRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewProducerService is the constructor for producerService.
func NewProducerService(params ProducerServiceParams) usecase.ProducerUsecase {
	return &producerService{
		producerRepo: params.ProducerRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *producerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMyProfile returns the caller's own producer profile.
func (srv *producerService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*entity.ProducerProfile, error) {
	profile, err := srv.producerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProducerNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load producer profile")
	}

	return profile, nil
}

// UpdateMyProfile applies a partial update to the caller's own profile.
// The verification flag has no counterpart in the input and stays untouched.
func (srv *producerService) UpdateMyProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProducerProfileInput) (*entity.ProducerProfile, error) {
	profile, err := srv.GetMyProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.BusinessName != nil {
		profile.BusinessName = *input.BusinessName
	}
	if input.Description != nil {
		profile.Description = *input.Description
	}
	if input.CoverImage != nil {
		profile.CoverImage = *input.CoverImage
	}
	if input.HasOrganicCertification != nil {
		profile.HasOrganicCertification = *input.HasOrganicCertification
	}
	if input.CertificationDetails != nil {
		profile.CertificationDetails = *input.CertificationDetails
	}
	if input.Website != nil {
		profile.Website = *input.Website
	}
	if input.Instagram != nil {
		profile.Instagram = *input.Instagram
	}
	if input.Whatsapp != nil {
		profile.Whatsapp = *input.Whatsapp
	}

	if err := srv.producerRepo.Update(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to update producer profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update producer profile")
	}

	return profile, nil
}

// EnsureProfile provisions a profile for the user if none exists yet. It is
// idempotent: a second call, or a lost race against a concurrent provisioning,
// returns the existing profile.
func (srv *producerService) EnsureProfile(ctx context.Context, userID uuid.UUID, businessName string) (*entity.ProducerProfile, error) {
	profile, err := srv.producerRepo.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProducerNotFound) {
		return nil, errors.Wrap(err, "failed to look up producer profile")
	}

	if businessName == "" {
		user, err := srv.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load user for profile provisioning")
		}
		businessName = user.Name
	}

	profile = &entity.ProducerProfile{
		UserID:       userID,
		BusinessName: businessName,
		IsActive:     true,
	}

	if err := srv.producerRepo.Create(ctx, profile); err != nil {
		// A concurrent provisioning may have won; the existing profile is
		// the correct answer either way.
		if existing, findErr := srv.producerRepo.FindByUserID(ctx, userID); findErr == nil {
			return existing, nil
		}

		return nil, errors.Wrap(err, "failed to create producer profile")
	}

	srv.log(ctx).Debug("Producer profile provisioned", slog.Any("userID", userID))

	return profile, nil
}

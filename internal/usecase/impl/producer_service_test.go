package impl

import (
	"context"
	"testing"

	"organico/internal/domain/entity"
	domainerrors "organico/internal/domain/errors"
	"organico/internal/domain/repository"
	"organico/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProducerService_GetMyProfile(t *testing.T) {
	fx := createTestProducerService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.ProducerProfile{UserID: userID, BusinessName: "Sítio Boa Terra"}

	fx.producerRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	result, err := fx.service.GetMyProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, profile, result)
}

func TestProducerService_GetMyProfile_NotFound(t *testing.T) {
	fx := createTestProducerService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.producerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProducerNotFound)

	result, err := fx.service.GetMyProfile(ctx, userID)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrProfileNotFound, err)
}

// The update merges only the set fields; everything else, including the
// administratively granted verification flag, stays as stored.
func TestProducerService_UpdateMyProfile_PartialMerge(t *testing.T) {
	fx := createTestProducerService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.ProducerProfile{
		UserID:       userID,
		BusinessName: "Sítio Boa Terra",
		Description:  "Hortaliças orgânicas",
		Instagram:    "@boaterra",
		IsVerified:   true,
	}

	newDescription := "Hortaliças e ovos caipiras"
	hasCert := true
	input := &usecase.UpdateProducerProfileInput{
		Description:             &newDescription,
		HasOrganicCertification: &hasCert,
	}

	fx.producerRepo.EXPECT().FindByUserID(ctx, userID).Return(stored, nil)
	fx.producerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ProducerProfile")).
		Run(func(args mock.Arguments) {
			profile := args.Get(1).(*entity.ProducerProfile)
			assert.Equal(t, "Sítio Boa Terra", profile.BusinessName)
			assert.Equal(t, newDescription, profile.Description)
			assert.Equal(t, "@boaterra", profile.Instagram)
			assert.True(t, profile.HasOrganicCertification)
			assert.True(t, profile.IsVerified)
		}).
		Return(nil)

	result, err := fx.service.UpdateMyProfile(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, newDescription, result.Description)
}

func TestProducerService_EnsureProfile_ReturnsExisting(t *testing.T) {
	fx := createTestProducerService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.ProducerProfile{UserID: userID, BusinessName: "Sítio Boa Terra"}

	// No Create expectation: an existing profile must not be provisioned again.
	fx.producerRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)

	result, err := fx.service.EnsureProfile(ctx, userID, "ignored")
	require.NoError(t, err)
	assert.Equal(t, existing, result)
}

func TestProducerService_EnsureProfile_DefaultsToUserName(t *testing.T) {
	fx := createTestProducerService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.producerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProducerNotFound)

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "João"}, nil)

	fx.producerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ProducerProfile")).
		Run(func(args mock.Arguments) {
			profile := args.Get(1).(*entity.ProducerProfile)
			assert.Equal(t, userID, profile.UserID)
			assert.Equal(t, "João", profile.BusinessName)
			assert.True(t, profile.IsActive)
		}).
		Return(nil)

	result, err := fx.service.EnsureProfile(ctx, userID, "")
	require.NoError(t, err)
	assert.Equal(t, "João", result.BusinessName)
}

// When the provisioning insert loses a race, the winner's profile is the answer.
func TestProducerService_EnsureProfile_LostProvisioningRace(t *testing.T) {
	fx := createTestProducerService(t)

	ctx := context.Background()
	userID := uuid.New()
	winner := &entity.ProducerProfile{UserID: userID, BusinessName: "Sítio Boa Terra"}

	fx.producerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProducerNotFound).
		Once()

	fx.producerRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(repository.ErrUserNotFound)

	fx.producerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(winner, nil).
		Once()

	result, err := fx.service.EnsureProfile(ctx, userID, "Sítio Boa Terra")
	require.NoError(t, err)
	assert.Equal(t, winner, result)
}

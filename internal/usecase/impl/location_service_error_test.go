package impl

import (
	"context"
	"testing"

	domainerrors "organico/internal/domain/errors"
	"organico/internal/domain/entity"
	"organico/internal/domain/repository"
	"organico/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationService_Create_NoProducerProfile(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.producerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProducerNotFound)

	location, err := fx.service.Create(ctx, userID, &usecase.CreateLocationInput{})
	assert.Nil(t, location)
	assert.Equal(t, domainerrors.ErrNoProducerProfile, err)
}

func TestLocationService_Create_InvalidLocationType(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.producerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.ProducerProfile{UserID: userID}, nil)

	location, err := fx.service.Create(ctx, userID, &usecase.CreateLocationInput{
		Name:         "Mercado",
		LocationType: "MALL",
	})
	assert.Nil(t, location)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_LOCATION_TYPE", appErr.ErrorCode())
	assert.Equal(t, "MALL", appErr.Details())
}

func TestLocationService_Create_MissingAddress(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.producerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.ProducerProfile{UserID: userID}, nil)

	location, err := fx.service.Create(ctx, userID, &usecase.CreateLocationInput{
		Name:         "Feira",
		LocationType: entity.LocationTypeFair,
	})
	assert.Nil(t, location)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestLocationService_Create_UnknownProduct(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	productIDs := []uuid.UUID{uuid.New()}

	fx.producerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.ProducerProfile{UserID: userID}, nil)

	fx.productRepo.EXPECT().
		FindByIDs(ctx, productIDs).
		Return(nil, repository.ErrProductNotFound)

	location, err := fx.service.Create(ctx, userID, &usecase.CreateLocationInput{
		Name:         "Feira",
		LocationType: entity.LocationTypeFair,
		Address:      &usecase.AddressInput{City: "Curitiba", State: "PR"},
		ProductIDs:   productIDs,
	})
	assert.Nil(t, location)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestLocationService_Update_NotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(nil, repository.ErrLocationNotFound)

	location, err := fx.service.Update(ctx, userID, locationID, &usecase.UpdateLocationInput{})
	assert.Nil(t, location)
	assert.Equal(t, domainerrors.ErrLocationNotFound, err)
}

func TestLocationService_Update_NotOwner(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	intruderID := uuid.New()
	locationID := uuid.New()
	newName := "Hijacked"

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(&entity.Location{ID: locationID, ProducerID: ownerID, Address: &entity.Address{}}, nil)

	// No Update expectation: the rejected write must leave the row untouched.
	location, err := fx.service.Update(ctx, intruderID, locationID, &usecase.UpdateLocationInput{Name: &newName})
	assert.Nil(t, location)
	assert.Equal(t, domainerrors.ErrNotLocationOwner, err)
}

func TestLocationService_Get_NotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindActiveByID(ctx, locationID).
		Return(nil, repository.ErrLocationNotFound)

	location, err := fx.service.Get(ctx, locationID)
	assert.Nil(t, location)
	assert.Equal(t, domainerrors.ErrLocationNotFound, err)
}

func TestLocationService_MyLocations_NoProfile(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.producerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProducerNotFound)

	markers, err := fx.service.MyLocations(ctx, userID)
	assert.Nil(t, markers)
	assert.Equal(t, domainerrors.ErrProfileNotFound, err)
}

func TestLocationService_AddImage_NotOwner(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	intruderID := uuid.New()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(&entity.Location{ID: locationID, ProducerID: ownerID}, nil)

	image, err := fx.service.AddImage(ctx, intruderID, locationID, &usecase.AddImageInput{ImageURL: "https://cdn.example.com/x.jpg"})
	assert.Nil(t, image)
	assert.Equal(t, domainerrors.ErrNotLocationOwner, err)
}

func TestLocationService_AddImage_MissingImage(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(&entity.Location{ID: locationID, ProducerID: userID}, nil)

	image, err := fx.service.AddImage(ctx, userID, locationID, &usecase.AddImageInput{})
	assert.Nil(t, image)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestLocationService_AddImage_NegativeDisplayOrder(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(&entity.Location{ID: locationID, ProducerID: userID}, nil)

	image, err := fx.service.AddImage(ctx, userID, locationID, &usecase.AddImageInput{
		ImageURL:     "https://cdn.example.com/x.jpg",
		DisplayOrder: -1,
	})
	assert.Nil(t, image)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestLocationService_ShareQR_InactiveLocation(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindActiveByID(ctx, locationID).
		Return(nil, repository.ErrLocationNotFound)

	png, err := fx.service.ShareQR(ctx, locationID)
	assert.Nil(t, png)
	assert.Equal(t, domainerrors.ErrLocationNotFound, err)
}

func TestLocationService_Delete_RemovesOwnedLocation(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(&entity.Location{ID: locationID, ProducerID: userID, Address: &entity.Address{}}, nil)

	fx.locationRepo.EXPECT().
		Delete(ctx, locationID).
		Return(nil)

	err := fx.service.Delete(ctx, userID, locationID)
	require.NoError(t, err)
}

func TestLocationService_Delete_NotOwner(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	intruderID := uuid.New()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(&entity.Location{ID: locationID, ProducerID: ownerID, Address: &entity.Address{}}, nil)

	// No Delete expectation: the rejected call must leave the row in place.
	err := fx.service.Delete(ctx, intruderID, locationID)
	assert.Equal(t, domainerrors.ErrNotLocationOwner, err)
}

func TestLocationService_Delete_NotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(nil, repository.ErrLocationNotFound)

	err := fx.service.Delete(ctx, userID, locationID)
	assert.Equal(t, domainerrors.ErrLocationNotFound, err)
}

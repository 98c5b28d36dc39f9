package impl

import (
	"context"
	"strings"
	"testing"

	"organico/internal/domain/entity"
	"organico/internal/domain/repository"
	"organico/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestLocationService_Create_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()
	input := &usecase.CreateLocationInput{
		Name:         "Feira do Largo da Ordem",
		LocationType: entity.LocationTypeFair,
		Address: &usecase.AddressInput{
			Street:       "Largo da Ordem",
			Neighborhood: "São Francisco",
			City:         "Curitiba",
			State:        "PR",
			ZipCode:      "80020-000",
			Latitude:     floatPtr(-25.4284),
			Longitude:    floatPtr(-49.2733),
		},
		OperationDays:  "Domingo",
		OperationHours: "7h às 13h",
	}

	fx.producerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.ProducerProfile{UserID: userID}, nil)

	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location"), mock.Anything).
		Run(func(args mock.Arguments) {
			location := args.Get(1).(*entity.Location)
			assert.Equal(t, userID, location.ProducerID)
			assert.True(t, location.IsActive)
			require.NotNil(t, location.Address)
			assert.Equal(t, "Curitiba", location.Address.City)
			assert.Equal(t, "PR", location.Address.State)
			require.NotNil(t, location.Address.Latitude)
			assert.InDelta(t, -25.4284, *location.Address.Latitude, 0.0001)
			location.ID = locationID
		}).
		Return(nil)

	expected := &entity.Location{ID: locationID, ProducerID: userID, Name: input.Name}
	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(expected, nil)

	location, err := fx.service.Create(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, expected, location)
}

func TestLocationService_Update_ReplacesProducts(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()
	productIDs := []uuid.UUID{uuid.New(), uuid.New()}
	input := &usecase.UpdateLocationInput{
		Name:       strPtr("Feira renomeada"),
		ProductIDs: productIDs,
	}

	existing := &entity.Location{
		ID:         locationID,
		ProducerID: userID,
		Name:       "Feira",
		Address:    &entity.Address{City: "Curitiba"},
	}

	fx.locationRepo.EXPECT().FindByID(ctx, locationID).Return(existing, nil).Once()
	fx.productRepo.EXPECT().
		FindByIDs(ctx, productIDs).
		Return([]*entity.Product{{ID: productIDs[0]}, {ID: productIDs[1]}}, nil)

	fx.locationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Location")).
		Run(func(args mock.Arguments) {
			location := args.Get(1).(*entity.Location)
			assert.Equal(t, "Feira renomeada", location.Name)
		}).
		Return(nil)
	fx.locationRepo.EXPECT().ReplaceProducts(ctx, locationID, productIDs).Return(nil)
	fx.locationRepo.EXPECT().FindByID(ctx, locationID).Return(existing, nil).Once()

	_, err := fx.service.Update(ctx, userID, locationID, input)
	require.NoError(t, err)
}

func TestLocationService_Update_EmptyProductSetClears(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()
	input := &usecase.UpdateLocationInput{ProductIDs: []uuid.UUID{}}

	existing := &entity.Location{ID: locationID, ProducerID: userID, Address: &entity.Address{}}

	fx.locationRepo.EXPECT().FindByID(ctx, locationID).Return(existing, nil).Twice()
	fx.locationRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.locationRepo.EXPECT().ReplaceProducts(ctx, locationID, []uuid.UUID{}).Return(nil)

	_, err := fx.service.Update(ctx, userID, locationID, input)
	require.NoError(t, err)
}

func TestLocationService_Update_NilProductSetLeavesAssociation(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()
	input := &usecase.UpdateLocationInput{Description: strPtr("novo texto")}

	existing := &entity.Location{ID: locationID, ProducerID: userID, Address: &entity.Address{}}

	fx.locationRepo.EXPECT().FindByID(ctx, locationID).Return(existing, nil).Twice()
	fx.locationRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	// No ReplaceProducts expectation: a nil set must leave the association alone.
	_, err := fx.service.Update(ctx, userID, locationID, input)
	require.NoError(t, err)
}

func TestLocationService_Update_MergesAddressCoordinates(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()
	input := &usecase.UpdateLocationInput{
		Address: &usecase.AddressUpdateInput{
			Latitude:  floatPtr(-25.5),
			Longitude: floatPtr(-49.3),
		},
	}

	existing := &entity.Location{
		ID:         locationID,
		ProducerID: userID,
		Address:    &entity.Address{Street: "Largo da Ordem", City: "Curitiba"},
	}

	fx.locationRepo.EXPECT().FindByID(ctx, locationID).Return(existing, nil).Twice()
	fx.locationRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Location")).
		Run(func(args mock.Arguments) {
			address := args.Get(1).(*entity.Location).Address
			assert.Equal(t, "Largo da Ordem", address.Street)
			assert.Equal(t, "Curitiba", address.City)
			require.NotNil(t, address.Latitude)
			assert.InDelta(t, -25.5, *address.Latitude, 0.0001)
		}).
		Return(nil)

	_, err := fx.service.Update(ctx, userID, locationID, input)
	require.NoError(t, err)
}

func TestLocationService_List_ClampsPagination(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	fx.locationRepo.EXPECT().
		ListMarkers(ctx, mock.AnythingOfType("*repository.LocationQuery")).
		Run(func(args mock.Arguments) {
			query := args.Get(1).(*repository.LocationQuery)
			assert.Equal(t, 100, query.Limit)
			assert.Equal(t, 0, query.Offset)
		}).
		Return([]*entity.LocationMarker{}, nil)

	_, err := fx.service.List(ctx, &usecase.ListLocationsInput{Limit: 500, Offset: -3})
	require.NoError(t, err)
}

func TestLocationService_List_DefaultPageSize(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	fx.locationRepo.EXPECT().
		ListMarkers(ctx, mock.AnythingOfType("*repository.LocationQuery")).
		Run(func(args mock.Arguments) {
			query := args.Get(1).(*repository.LocationQuery)
			assert.Equal(t, 20, query.Limit)
		}).
		Return([]*entity.LocationMarker{}, nil)

	_, err := fx.service.List(ctx, &usecase.ListLocationsInput{})
	require.NoError(t, err)
}

func TestLocationService_MapData_FiltersByRadius(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	near := &entity.LocationMarker{
		ID:        uuid.New(),
		Latitude:  floatPtr(-25.43),
		Longitude: floatPtr(-49.28),
	}
	far := &entity.LocationMarker{
		ID:        uuid.New(),
		Latitude:  floatPtr(-26.30),
		Longitude: floatPtr(-48.85),
	}

	fx.locationRepo.EXPECT().
		ListMarkers(ctx, mock.AnythingOfType("*repository.LocationQuery")).
		Run(func(args mock.Arguments) {
			query := args.Get(1).(*repository.LocationQuery)
			assert.True(t, query.RequireCoordinates)
		}).
		Return([]*entity.LocationMarker{near, far}, nil)

	markers, err := fx.service.MapData(ctx, &usecase.MapDataInput{
		Latitude:  floatPtr(-25.4284),
		Longitude: floatPtr(-49.2733),
		RadiusKm:  floatPtr(10),
	})
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, near.ID, markers[0].ID)
}

func TestLocationService_MapData_SkipsMarkersWithoutCoordinates(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	partial := &entity.LocationMarker{ID: uuid.New(), Latitude: floatPtr(-25.43)}

	fx.locationRepo.EXPECT().
		ListMarkers(ctx, mock.Anything).
		Return([]*entity.LocationMarker{partial}, nil)

	markers, err := fx.service.MapData(ctx, &usecase.MapDataInput{
		Latitude:  floatPtr(-25.4284),
		Longitude: floatPtr(-49.2733),
		RadiusKm:  floatPtr(10),
	})
	require.NoError(t, err)
	assert.Empty(t, markers)
}

func TestLocationService_MapData_NoCenterReturnsAll(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	markers := []*entity.LocationMarker{
		{ID: uuid.New(), Latitude: floatPtr(-25.43), Longitude: floatPtr(-49.28)},
		{ID: uuid.New(), Latitude: floatPtr(-26.30), Longitude: floatPtr(-48.85)},
	}

	fx.locationRepo.EXPECT().
		ListMarkers(ctx, mock.Anything).
		Return(markers, nil)

	result, err := fx.service.MapData(ctx, &usecase.MapDataInput{})
	require.NoError(t, err)
	assert.Equal(t, markers, result)
}

func TestLocationService_MapData_RadiusClampedToConfiguredMax(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	// Roughly 110 km south of the center; visible only with an unclamped radius.
	far := &entity.LocationMarker{
		ID:        uuid.New(),
		Latitude:  floatPtr(-26.42),
		Longitude: floatPtr(-49.27),
	}

	fx.locationRepo.EXPECT().
		ListMarkers(ctx, mock.Anything).
		Return([]*entity.LocationMarker{far}, nil)

	markers, err := fx.service.MapData(ctx, &usecase.MapDataInput{
		Latitude:  floatPtr(-25.4284),
		Longitude: floatPtr(-49.2733),
		RadiusKm:  floatPtr(10000),
	})
	require.NoError(t, err)
	assert.Empty(t, markers)
}

func TestLocationService_MyLocations_ScopedToProducer(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	markers := []*entity.LocationMarker{{ID: uuid.New()}}

	fx.producerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.ProducerProfile{UserID: userID}, nil)

	fx.locationRepo.EXPECT().
		ListMarkers(ctx, mock.AnythingOfType("*repository.LocationQuery")).
		Run(func(args mock.Arguments) {
			query := args.Get(1).(*repository.LocationQuery)
			require.NotNil(t, query.ProducerID)
			assert.Equal(t, userID, *query.ProducerID)
		}).
		Return(markers, nil)

	result, err := fx.service.MyLocations(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, markers, result)
}

func TestLocationService_AddImage_UploadsBody(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()
	body := strings.NewReader("png bytes")
	input := &usecase.AddImageInput{
		Body:        body,
		ContentType: "image/png",
		Filename:    "banca.png",
		Caption:     "Banca principal",
	}

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(&entity.Location{ID: locationID, ProducerID: userID}, nil)

	fx.fileStorage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "image/png", body).
		Run(func(args mock.Arguments) {
			key := args.Get(1).(string)
			assert.True(t, strings.HasPrefix(key, "locations/"+locationID.String()+"/"))
			assert.True(t, strings.HasSuffix(key, ".png"))
		}).
		Return("https://media.example.com/banca.png", nil)

	fx.locationRepo.EXPECT().
		AddImage(ctx, mock.AnythingOfType("*entity.LocationImage")).
		Return(nil)

	image, err := fx.service.AddImage(ctx, userID, locationID, input)
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/banca.png", image.Image)
	assert.Equal(t, "Banca principal", image.Caption)
	assert.Equal(t, locationID, image.LocationID)
}

func TestLocationService_AddImage_AcceptsHostedURL(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()
	input := &usecase.AddImageInput{ImageURL: "https://cdn.example.com/feira.jpg", DisplayOrder: 2}

	fx.locationRepo.EXPECT().
		FindByID(ctx, locationID).
		Return(&entity.Location{ID: locationID, ProducerID: userID}, nil)

	fx.locationRepo.EXPECT().
		AddImage(ctx, mock.AnythingOfType("*entity.LocationImage")).
		Return(nil)

	image, err := fx.service.AddImage(ctx, userID, locationID, input)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/feira.jpg", image.Image)
	assert.Equal(t, 2, image.DisplayOrder)
}

func TestLocationService_ShareQR(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locationID := uuid.New()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.locationRepo.EXPECT().
		FindActiveByID(ctx, locationID).
		Return(&entity.Location{ID: locationID}, nil)

	fx.qrService.EXPECT().GenerateLocationQR(locationID).Return(png, nil)

	result, err := fx.service.ShareQR(ctx, locationID)
	require.NoError(t, err)
	assert.Equal(t, png, result)
}

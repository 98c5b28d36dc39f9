package impl

import (
	"context"
	"testing"

	"organico/internal/domain/entity"
	domainerrors "organico/internal/domain/errors"
	"organico/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_Toggle_AddsWhenAbsent(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindActiveByID(ctx, locationID).
		Return(&entity.Location{ID: locationID}, nil)

	fx.favoriteRepo.EXPECT().
		Delete(ctx, userID, locationID).
		Return(int64(0), nil)

	fx.favoriteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Favorite")).
		Run(func(args mock.Arguments) {
			favorite := args.Get(1).(*entity.Favorite)
			assert.Equal(t, userID, favorite.UserID)
			assert.Equal(t, locationID, favorite.LocationID)
			assert.Equal(t, "Comprar ovos aqui", favorite.Note)
		}).
		Return(nil)

	output, err := fx.service.Toggle(ctx, userID, locationID, "Comprar ovos aqui")
	require.NoError(t, err)
	assert.True(t, output.Favorited)
	require.NotNil(t, output.Favorite)
	assert.Equal(t, locationID, output.Favorite.LocationID)
}

// The delete is the flip: when it removes a row, the toggle is done and no
// insert ever runs.
func TestFavoriteService_Toggle_RemovesWhenPresent(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindActiveByID(ctx, locationID).
		Return(&entity.Location{ID: locationID}, nil)

	fx.favoriteRepo.EXPECT().
		Delete(ctx, userID, locationID).
		Return(int64(1), nil)

	output, err := fx.service.Toggle(ctx, userID, locationID, "")
	require.NoError(t, err)
	assert.False(t, output.Favorited)
	assert.Nil(t, output.Favorite)
}

// A toggle that loses the insert race against a concurrent favoriting request
// must still flip the state exactly once: it retries the delete and removes
// the winner's row.
func TestFavoriteService_Toggle_LostInsertRaceRetriesDelete(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindActiveByID(ctx, locationID).
		Return(&entity.Location{ID: locationID}, nil)

	fx.favoriteRepo.EXPECT().
		Delete(ctx, userID, locationID).
		Return(int64(0), nil).
		Once()

	fx.favoriteRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(repository.ErrFavoriteExists)

	fx.favoriteRepo.EXPECT().
		Delete(ctx, userID, locationID).
		Return(int64(1), nil).
		Once()

	output, err := fx.service.Toggle(ctx, userID, locationID, "")
	require.NoError(t, err)
	assert.False(t, output.Favorited)
}

// When the winner's row is gone again by the time the loser retries, the loop
// comes back around to the insert.
func TestFavoriteService_Toggle_RetriesUntilFlipLands(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindActiveByID(ctx, locationID).
		Return(&entity.Location{ID: locationID}, nil)

	fx.favoriteRepo.EXPECT().
		Delete(ctx, userID, locationID).
		Return(int64(0), nil).
		Twice()

	fx.favoriteRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(repository.ErrFavoriteExists).
		Once()

	fx.favoriteRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(nil).
		Once()

	output, err := fx.service.Toggle(ctx, userID, locationID, "")
	require.NoError(t, err)
	assert.True(t, output.Favorited)
}

func TestFavoriteService_Toggle_LocationNotFound(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindActiveByID(ctx, locationID).
		Return(nil, repository.ErrLocationNotFound)

	output, err := fx.service.Toggle(ctx, userID, locationID, "")
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrLocationNotFound, err)
}

func TestFavoriteService_Check_HasNoSideEffects(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	// Only the existence lookup may run; any write would fail the mock.
	fx.favoriteRepo.EXPECT().
		Exists(ctx, userID, locationID).
		Return(true, nil)

	favorited, err := fx.service.Check(ctx, userID, locationID)
	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestFavoriteService_List(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	favorites := []*entity.Favorite{
		{UserID: userID, LocationID: uuid.New(), Location: &entity.LocationMarker{Name: "Feira"}},
	}

	fx.favoriteRepo.EXPECT().
		ListByUser(ctx, userID).
		Return(favorites, nil)

	result, err := fx.service.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, favorites, result)
}

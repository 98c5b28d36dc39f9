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

// toggleRetryLimit bounds the delete/insert loop. A retry only happens when
// another toggle for the same pair commits between our delete and our insert,
// so contention settles within an attempt or two.
const toggleRetryLimit = 3

// favoriteService implements the FavoriteUsecase interface.
//
// The toggle is a delete-first flip on the (user, location) pair: a delete
// that removed a row IS the flip to "removed"; otherwise the insert is the
// flip to "favorited". The composite unique index makes the insert the only
// contention point, and a loser simply observes ErrFavoriteExists and retries
// the delete. Every request therefore performs exactly one state flip, so N
// toggles from empty always net out to N mod 2 rows.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	LocationRepo repository.LocationRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		locationRepo: params.LocationRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle flips the favorite state of the pair and reports the resulting state.
func (srv *favoriteService) Toggle(ctx context.Context, userID, locationID uuid.UUID, note string) (*usecase.ToggleFavoriteOutput, error) {
	if _, err := srv.locationRepo.FindActiveByID(ctx, locationID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve location for favorite toggle")
	}

	for attempt := 0; attempt < toggleRetryLimit; attempt++ {
		removed, err := srv.favoriteRepo.Delete(ctx, userID, locationID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to delete favorite")
		}
		if removed > 0 {
			return &usecase.ToggleFavoriteOutput{Favorited: false}, nil
		}

		favorite := &entity.Favorite{
			UserID:     userID,
			LocationID: locationID,
			Note:       note,
		}

		err = srv.favoriteRepo.Create(ctx, favorite)
		if err == nil {
			return &usecase.ToggleFavoriteOutput{Favorited: true, Favorite: favorite}, nil
		}
		if !errors.Is(err, repository.ErrFavoriteExists) {
			return nil, errors.Wrap(err, "failed to create favorite")
		}

		// A concurrent toggle favorited the pair first; flip it back off.
		srv.log(ctx).Debug("Favorite toggle lost insert race, retrying delete",
			slog.Any("userID", userID), slog.Any("locationID", locationID))
	}

	return nil, errors.New("favorite toggle kept losing to concurrent writers")
}

// Check reports whether the pair is favorited. It never mutates anything.
func (srv *favoriteService) Check(ctx context.Context, userID, locationID uuid.UUID) (bool, error) {
	favorited, err := srv.favoriteRepo.Exists(ctx, userID, locationID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return favorited, nil
}

// List returns the user's favorites newest first with location details.
func (srv *favoriteService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

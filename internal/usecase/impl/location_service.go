// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"path"

	"organico/config"
	deliverycontext "organico/internal/delivery/context"
	"organico/internal/domain/entity"
	domainerrors "organico/internal/domain/errors"
	"organico/internal/domain/repository"
	"organico/internal/domain/service"
	"organico/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackPageSize = 20
	fallbackMaxPage  = 100
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	producerRepo repository.ProducerRepository
	productRepo  repository.ProductRepository
	qrService    service.QRCodeService
	fileStorage  service.FileStorage
	listing      *config.ListingConfig
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for locationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	ProducerRepo repository.ProducerRepository
	ProductRepo  repository.ProductRepository
	QRService    service.QRCodeService
	FileStorage  service.FileStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService. It receives all dependencies as interfaces.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	var listing *config.ListingConfig
	if params.Config != nil {
		listing = params.Config.Listing
	}

	return &locationService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		producerRepo: params.ProducerRepo,
		productRepo:  params.ProductRepo,
		qrService:    params.QRService,
		fileStorage:  params.FileStorage,
		listing:      listing,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new location for the calling producer. The address row,
// the location row and the product association set are written in a single
// transaction.
func (srv *locationService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateLocationInput) (*entity.Location, error) {
	if _, err := srv.producerRepo.FindByUserID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrProducerNotFound) {
			srv.log(ctx).Warn("Location create without producer profile", slog.Any("userID", userID))

			return nil, domainerrors.ErrNoProducerProfile
		}

		return nil, errors.Wrap(err, "failed to load producer profile")
	}

	if !entity.ValidLocationType(input.LocationType) {
		return nil, domainerrors.ErrInvalidLocationType.WithDetails(input.LocationType)
	}
	if input.Address == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	if err := srv.resolveProducts(ctx, input.ProductIDs); err != nil {
		return nil, err
	}

	location := &entity.Location{
		ProducerID:   userID,
		Name:         input.Name,
		LocationType: input.LocationType,
		Description:  input.Description,
		Address: &entity.Address{
			Street:       input.Address.Street,
			Number:       input.Address.Number,
			Complement:   input.Address.Complement,
			Neighborhood: input.Address.Neighborhood,
			City:         input.Address.City,
			State:        input.Address.State,
			ZipCode:      input.Address.ZipCode,
			Latitude:     input.Address.Latitude,
			Longitude:    input.Address.Longitude,
		},
		MainImage:      input.MainImage,
		OperationDays:  input.OperationDays,
		OperationHours: input.OperationHours,
		Phone:          input.Phone,
		Whatsapp:       input.Whatsapp,
		IsActive:       true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.LocationRepo().Create(ctx, location, input.ProductIDs)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute location create transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute location create transaction")
	}

	srv.log(ctx).Debug("Location created", slog.Any("locationID", location.ID), slog.Any("userID", userID))

	return srv.locationRepo.FindByID(ctx, location.ID)
}

// Update applies a partial update to an owned location. The address sub-record
// is merged field by field; the product set follows replace-set semantics.
func (srv *locationService) Update(ctx context.Context, userID, locationID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	location, err := srv.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to load location for update")
	}

	if !location.IsOwnedBy(userID) {
		srv.log(ctx).Warn("Location update denied", slog.Any("locationID", locationID), slog.Any("userID", userID))

		return nil, domainerrors.ErrNotLocationOwner
	}

	if input.LocationType != nil && !entity.ValidLocationType(*input.LocationType) {
		return nil, domainerrors.ErrInvalidLocationType.WithDetails(*input.LocationType)
	}
	if input.ProductIDs != nil {
		if err := srv.resolveProducts(ctx, input.ProductIDs); err != nil {
			return nil, err
		}
	}

	applyLocationUpdate(location, input)
	mergeAddress(location.Address, input.Address)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.LocationRepo()

		if err := locationRepo.Update(ctx, location); err != nil {
			return errors.Wrap(err, "failed to update location")
		}
		if input.ProductIDs != nil {
			if err := locationRepo.ReplaceProducts(ctx, locationID, input.ProductIDs); err != nil {
				return errors.Wrap(err, "failed to replace location products")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute location update transaction", slog.Any("locationID", locationID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute location update transaction")
	}

	return srv.locationRepo.FindByID(ctx, locationID)
}

// applyLocationUpdate copies the set fields of the input onto the entity.
// The verification flag has no counterpart in the input and stays untouched.
func applyLocationUpdate(location *entity.Location, input *usecase.UpdateLocationInput) {
	if input.Name != nil {
		location.Name = *input.Name
	}
	if input.LocationType != nil {
		location.LocationType = *input.LocationType
	}
	if input.Description != nil {
		location.Description = *input.Description
	}
	if input.MainImage != nil {
		location.MainImage = *input.MainImage
	}
	if input.OperationDays != nil {
		location.OperationDays = *input.OperationDays
	}
	if input.OperationHours != nil {
		location.OperationHours = *input.OperationHours
	}
	if input.Phone != nil {
		location.Phone = *input.Phone
	}
	if input.Whatsapp != nil {
		location.Whatsapp = *input.Whatsapp
	}
	if input.IsActive != nil {
		location.IsActive = *input.IsActive
	}
}

// mergeAddress copies the set fields of the partial address input onto the
// owned address. Coordinates can be updated independently of the street data.
func mergeAddress(address *entity.Address, input *usecase.AddressUpdateInput) {
	if address == nil || input == nil {
		return
	}

	if input.Street != nil {
		address.Street = *input.Street
	}
	if input.Number != nil {
		address.Number = *input.Number
	}
	if input.Complement != nil {
		address.Complement = *input.Complement
	}
	if input.Neighborhood != nil {
		address.Neighborhood = *input.Neighborhood
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.State != nil {
		address.State = *input.State
	}
	if input.ZipCode != nil {
		address.ZipCode = *input.ZipCode
	}
	if input.Latitude != nil {
		address.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		address.Longitude = input.Longitude
	}
}

// resolveProducts validates that every referenced product exists and is active.
func (srv *locationService) resolveProducts(ctx context.Context, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}

	if _, err := srv.productRepo.FindByIDs(ctx, productIDs); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to resolve products")
	}

	return nil
}

// Delete removes an owned location. The address, gallery images, favorites
// and product associations go with it in a single transaction.
func (srv *locationService) Delete(ctx context.Context, userID, locationID uuid.UUID) error {
	location, err := srv.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrLocationNotFound
		}

		return errors.Wrap(err, "failed to load location for delete")
	}

	if !location.IsOwnedBy(userID) {
		srv.log(ctx).Warn("Location delete denied", slog.Any("locationID", locationID), slog.Any("userID", userID))

		return domainerrors.ErrNotLocationOwner
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.LocationRepo().Delete(ctx, locationID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute location delete transaction", slog.Any("locationID", locationID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute location delete transaction")
	}

	srv.log(ctx).Debug("Location deleted", slog.Any("locationID", locationID), slog.Any("userID", userID))

	return nil
}

// Get returns the full aggregate of an active location.
func (srv *locationService) Get(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := srv.locationRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to load location")
	}

	return location, nil
}

// List returns the flattened markers matching the filters.
func (srv *locationService) List(ctx context.Context, input *usecase.ListLocationsInput) ([]*entity.LocationMarker, error) {
	limit, offset := srv.clampPage(input.Limit, input.Offset)

	markers, err := srv.locationRepo.ListMarkers(ctx, &repository.LocationQuery{
		LocationType: input.LocationType,
		IsVerified:   input.IsVerified,
		City:         input.City,
		State:        input.State,
		Search:       input.Search,
		OrderBy:      input.OrderBy,
		Descending:   input.Descending,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return markers, nil
}

// MyLocations returns the caller's own markers regardless of visibility.
func (srv *locationService) MyLocations(ctx context.Context, userID uuid.UUID) ([]*entity.LocationMarker, error) {
	if _, err := srv.producerRepo.FindByUserID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrProducerNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load producer profile")
	}

	markers, err := srv.locationRepo.ListMarkers(ctx, &repository.LocationQuery{
		ProducerID: &userID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own locations")
	}

	return markers, nil
}

// MapData returns markers that carry a complete coordinate pair, optionally
// narrowed to a radius around a center point.
func (srv *locationService) MapData(ctx context.Context, input *usecase.MapDataInput) ([]*entity.LocationMarker, error) {
	markers, err := srv.locationRepo.ListMarkers(ctx, &repository.LocationQuery{
		LocationType:       input.LocationType,
		City:               input.City,
		State:              input.State,
		RequireCoordinates: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list map markers")
	}

	if input.Latitude == nil || input.Longitude == nil || input.RadiusKm == nil {
		return markers, nil
	}

	radiusKm := *input.RadiusKm
	if srv.listing != nil && srv.listing.MaxMapRadiusKm > 0 && radiusKm > srv.listing.MaxMapRadiusKm {
		radiusKm = srv.listing.MaxMapRadiusKm
	}

	center := orb.Point{*input.Longitude, *input.Latitude}
	nearby := make([]*entity.LocationMarker, 0, len(markers))
	for _, marker := range markers {
		if !marker.HasCoordinates() {
			continue
		}

		point := orb.Point{*marker.Longitude, *marker.Latitude}
		if geo.Distance(center, point) <= radiusKm*1000 {
			nearby = append(nearby, marker)
		}
	}

	return nearby, nil
}

// AddImage appends a gallery image to an owned location. A raw upload is
// written through the file storage first; a pre-hosted URL is taken as-is.
func (srv *locationService) AddImage(ctx context.Context, userID, locationID uuid.UUID, input *usecase.AddImageInput) (*entity.LocationImage, error) {
	location, err := srv.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to load location for image append")
	}

	if !location.IsOwnedBy(userID) {
		srv.log(ctx).Warn("Image append denied", slog.Any("locationID", locationID), slog.Any("userID", userID))

		return nil, domainerrors.ErrNotLocationOwner
	}

	if input.DisplayOrder < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("display order must not be negative")
	}

	imageURL := input.ImageURL
	if input.Body != nil {
		key := "locations/" + locationID.String() + "/" + uuid.New().String() + path.Ext(input.Filename)
		imageURL, err = srv.fileStorage.Save(ctx, key, input.ContentType, input.Body)
		if err != nil {
			srv.log(ctx).Error("Failed to store location image", slog.Any("locationID", locationID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to store location image")
		}
	}
	if imageURL == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is required")
	}

	image := &entity.LocationImage{
		LocationID:   locationID,
		Image:        imageURL,
		Caption:      input.Caption,
		DisplayOrder: input.DisplayOrder,
	}

	if err := srv.locationRepo.AddImage(ctx, image); err != nil {
		return nil, errors.Wrap(err, "failed to append location image")
	}

	return image, nil
}

// ShareQR renders a PNG QR code pointing at the public page of an active location.
func (srv *locationService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.locationRepo.FindActiveByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to load location for QR share")
	}

	png, err := srv.qrService.GenerateLocationQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate location QR code")
	}

	return png, nil
}

// clampPage normalizes limit/offset against the configured bounds.
func (srv *locationService) clampPage(limit, offset int) (int, int) {
	defaultSize, maxSize := fallbackPageSize, fallbackMaxPage
	if srv.listing != nil {
		if srv.listing.DefaultPageSize > 0 {
			defaultSize = srv.listing.DefaultPageSize
		}
		if srv.listing.MaxPageSize > 0 {
			maxSize = srv.listing.MaxPageSize
		}
	}

	if limit <= 0 {
		limit = defaultSize
	}
	if limit > maxSize {
		limit = maxSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

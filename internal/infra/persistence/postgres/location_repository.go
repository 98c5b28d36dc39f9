package postgres

import (
	"context"

	"organico/internal/domain/entity"
	domainerrors "organico/internal/domain/errors"
	"organico/internal/domain/repository"
	"organico/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the domain.LocationRepository interface using GORM.
// The aggregate spans four tables (locations, addresses, location_images,
// location_products); multi-row writes are expected to run inside a
// transaction handed out by the TransactionManager.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// Create persists a new location together with its owned address and initial
// product associations.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location, productIDs []uuid.UUID) error {
	locM := fromLocationDomain(location)

	// The address row is created first through the belongs-to association.
	if err := repo.db.WithContext(ctx).Omit("Products", "Producer", "Images").Create(locM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProducerNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	if len(productIDs) > 0 {
		if err := repo.appendProducts(ctx, locM, productIDs); err != nil {
			return err
		}
	}

	location.ID = locM.ID
	location.CreatedAt = locM.CreatedAt
	location.UpdatedAt = locM.UpdatedAt
	if location.Address != nil && locM.Address != nil {
		location.Address.ID = locM.Address.ID
		location.Address.CreatedAt = locM.Address.CreatedAt
		location.Address.UpdatedAt = locM.Address.UpdatedAt
	}

	return nil
}

// FindByID retrieves the full aggregate regardless of visibility.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindActiveByID retrieves the full aggregate only when it is active.
func (repo *locationRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	return repo.findOne(ctx, "id = ? AND is_active = ?", id, true)
}

func (repo *locationRepository) findOne(ctx context.Context, cond string, args ...any) (*entity.Location, error) {
	var locM model.LocationModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Producer").
		Preload("Products", "is_active = ?", true).
		Preload("Products.Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, created_at ASC")
		}).
		Where(cond, args...).
		First(&locM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return toLocationDomain(&locM), nil
}

// Update saves the location row and its owned address row. Association sets
// are managed through ReplaceProducts and AddImage, never here.
func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	locM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Omit("Address", "Products", "Producer", "Images").Save(locM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update location")
	}
	if locM.Address != nil {
		if err := repo.db.WithContext(ctx).Save(locM.Address).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update location address")
		}
	}

	location.UpdatedAt = locM.UpdatedAt
	if location.Address != nil && locM.Address != nil {
		location.Address.UpdatedAt = locM.Address.UpdatedAt
	}

	return nil
}

// ReplaceProducts replaces the full product association set. An empty slice
// clears all associations.
func (repo *locationRepository) ReplaceProducts(ctx context.Context, locationID uuid.UUID, productIDs []uuid.UUID) error {
	locM := &model.LocationModel{ID: locationID}

	if len(productIDs) == 0 {
		err := repo.db.WithContext(ctx).Model(locM).Association("Products").Clear()
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to clear location products")
		}

		return nil
	}

	productMs := make([]*model.ProductModel, 0, len(productIDs))
	for _, id := range productIDs {
		productMs = append(productMs, &model.ProductModel{ID: id})
	}

	err := repo.db.WithContext(ctx).Model(locM).Omit("Products.*").Association("Products").Replace(productMs)
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to replace location products")
	}

	return nil
}

// AddImage appends a gallery image.
func (repo *locationRepository) AddImage(ctx context.Context, image *entity.LocationImage) error {
	imageM := &model.LocationImageModel{
		ID:           image.ID,
		LocationID:   image.LocationID,
		Image:        image.Image,
		Caption:      image.Caption,
		DisplayOrder: image.DisplayOrder,
	}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add location image")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt
	image.UpdatedAt = imageM.UpdatedAt

	return nil
}

// markerRow is the scan target for the flattened list/map read model.
type markerRow struct {
	ID           uuid.UUID
	Name         string
	LocationType string
	ProducerName string
	MainImage    string
	Latitude     *float64
	Longitude    *float64
	City         string
	State        string
	ProductCount int
	IsVerified   bool
}

// ListMarkers returns the flattened read model for all active locations
// matching the query. A single joined select avoids N+1 loads on listings.
func (repo *locationRepository) ListMarkers(ctx context.Context, query *repository.LocationQuery) ([]*entity.LocationMarker, error) {
	tx := repo.db.WithContext(ctx).
		Table("locations").
		Select(`locations.id,
			locations.name,
			locations.location_type,
			locations.main_image,
			locations.is_verified,
			producer_profiles.business_name AS producer_name,
			addresses.latitude,
			addresses.longitude,
			addresses.city,
			addresses.state,
			(SELECT COUNT(*) FROM location_products lp WHERE lp.location_id = locations.id) AS product_count`).
		Joins("JOIN addresses ON addresses.id = locations.address_id").
		Joins("JOIN producer_profiles ON producer_profiles.user_id = locations.producer_id").
		Where("locations.is_active = ?", true)

	if query.LocationType != "" {
		tx = tx.Where("locations.location_type = ?", query.LocationType)
	}
	if query.IsVerified != nil {
		tx = tx.Where("locations.is_verified = ?", *query.IsVerified)
	}
	if query.City != "" {
		tx = tx.Where("LOWER(addresses.city) = LOWER(?)", query.City)
	}
	if query.State != "" {
		tx = tx.Where("LOWER(addresses.state) = LOWER(?)", query.State)
	}
	if query.ProducerID != nil {
		tx = tx.Where("locations.producer_id = ?", *query.ProducerID)
	}
	if query.RequireCoordinates {
		tx = tx.Where("addresses.latitude IS NOT NULL AND addresses.longitude IS NOT NULL")
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where(
			`locations.name ILIKE ? OR locations.description ILIKE ?
				OR addresses.city ILIKE ? OR addresses.neighborhood ILIKE ?
				OR producer_profiles.business_name ILIKE ?`,
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	direction := "ASC"
	if query.Descending {
		direction = "DESC"
	}
	switch query.OrderBy {
	case "name":
		tx = tx.Order("locations.name " + direction)
	case "created_at":
		tx = tx.Order("locations.created_at " + direction)
	default:
		// Newest first unless the caller picked an ordering.
		tx = tx.Order("locations.created_at DESC")
	}

	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}

	var rows []*markerRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list location markers")
	}

	markers := make([]*entity.LocationMarker, 0, len(rows))
	for _, row := range rows {
		markers = append(markers, &entity.LocationMarker{
			ID:           row.ID,
			Name:         row.Name,
			LocationType: row.LocationType,
			ProducerName: row.ProducerName,
			MainImage:    row.MainImage,
			Latitude:     row.Latitude,
			Longitude:    row.Longitude,
			City:         row.City,
			State:        row.State,
			ProductCount: row.ProductCount,
			IsVerified:   row.IsVerified,
		})
	}

	return markers, nil
}

// Delete hard-deletes the location, its address, its images and its product
// links. Intended to run inside a transaction.
func (repo *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var locM model.LocationModel
	err := repo.db.WithContext(ctx).Select("id", "address_id").Where("id = ?", id).First(&locM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrLocationNotFound
		}

		return errors.Wrap(err, "failed to load location for delete")
	}

	db := repo.db.WithContext(ctx)
	if err := db.Where("location_id = ?", id).Delete(&model.LocationImageModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete location images")
	}
	if err := db.Exec("DELETE FROM location_products WHERE location_id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete location product links")
	}
	if err := db.Delete(&model.LocationModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete location")
	}
	if err := db.Delete(&model.AddressModel{}, "id = ?", locM.AddressID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete location address")
	}

	return nil
}

func (repo *locationRepository) appendProducts(ctx context.Context, locM *model.LocationModel, productIDs []uuid.UUID) error {
	productMs := make([]*model.ProductModel, 0, len(productIDs))
	for _, id := range productIDs {
		productMs = append(productMs, &model.ProductModel{ID: id})
	}

	err := repo.db.WithContext(ctx).Model(locM).Omit("Products.*").Association("Products").Append(productMs)
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to associate location products")
	}

	return nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	location := &entity.Location{
		ID:             data.ID,
		ProducerID:     data.ProducerID,
		Name:           data.Name,
		LocationType:   data.LocationType,
		Description:    data.Description,
		Address:        toAddressDomain(data.Address),
		MainImage:      data.MainImage,
		OperationDays:  data.OperationDays,
		OperationHours: data.OperationHours,
		Phone:          data.Phone,
		Whatsapp:       data.Whatsapp,
		IsActive:       data.IsActive,
		IsVerified:     data.IsVerified,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.Producer != nil {
		location.ProducerName = data.Producer.BusinessName
	}

	location.Products = make([]*entity.Product, 0, len(data.Products))
	for _, productM := range data.Products {
		location.Products = append(location.Products, toProductDomain(productM))
	}

	location.Images = make([]*entity.LocationImage, 0, len(data.Images))
	for _, imageM := range data.Images {
		location.Images = append(location.Images, &entity.LocationImage{
			ID:           imageM.ID,
			LocationID:   imageM.LocationID,
			Image:        imageM.Image,
			Caption:      imageM.Caption,
			DisplayOrder: imageM.DisplayOrder,
			CreatedAt:    imageM.CreatedAt,
			UpdatedAt:    imageM.UpdatedAt,
		})
	}

	return location
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	locM := &model.LocationModel{
		ID:             data.ID,
		ProducerID:     data.ProducerID,
		Name:           data.Name,
		LocationType:   data.LocationType,
		Description:    data.Description,
		Address:        fromAddressDomain(data.Address),
		MainImage:      data.MainImage,
		OperationDays:  data.OperationDays,
		OperationHours: data.OperationHours,
		Phone:          data.Phone,
		Whatsapp:       data.Whatsapp,
		IsActive:       data.IsActive,
		IsVerified:     data.IsVerified,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if locM.Address != nil {
		locM.AddressID = locM.Address.ID
	}

	return locM
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:           data.ID,
		Street:       data.Street,
		Number:       data.Number,
		Complement:   data.Complement,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		State:        data.State,
		ZipCode:      data.ZipCode,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:           data.ID,
		Street:       data.Street,
		Number:       data.Number,
		Complement:   data.Complement,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		State:        data.State,
		ZipCode:      data.ZipCode,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

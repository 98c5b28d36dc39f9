package postgres

import (
	"context"
	"time"

	"organico/internal/domain/entity"
	domainerrors "organico/internal/domain/errors"
	"organico/internal/domain/repository"
	"organico/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
// The composite unique index on (user_id, location_id) is what makes concurrent
// toggles safe: the losing insert surfaces as ErrFavoriteExists.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create persists a new favorite. Returns ErrFavoriteExists when the
// (user, location) pair is already present.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favM := &model.FavoriteModel{
		ID:         favorite.ID,
		UserID:     favorite.UserID,
		LocationID: favorite.LocationID,
		Note:       favorite.Note,
	}

	if err := repo.db.WithContext(ctx).Create(favM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrFavoriteExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favM.ID
	favorite.CreatedAt = favM.CreatedAt

	return nil
}

// Delete removes the favorite for the pair and reports how many rows went
// away. Zero rows means a concurrent toggle got there first.
func (repo *favoriteRepository) Delete(ctx context.Context, userID, locationID uuid.UUID) (int64, error) {
	res := repo.db.WithContext(ctx).
		Where("user_id = ? AND location_id = ?", userID, locationID).
		Delete(&model.FavoriteModel{})
	if res.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete favorite")
	}

	return res.RowsAffected, nil
}

// Exists reports whether the pair is currently favorited.
func (repo *favoriteRepository) Exists(ctx context.Context, userID, locationID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND location_id = ?", userID, locationID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return count > 0, nil
}

// favoriteRow is the scan target for the favorites listing, which resolves the
// location's marker-level details in the same select.
type favoriteRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	LocationID   uuid.UUID
	Note         string
	CreatedAt    time.Time
	LocationName string
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

// ListByUser returns the user's favorites newest first, each carrying the
// location's flattened details.
func (repo *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var rows []*favoriteRow
	err := repo.db.WithContext(ctx).
		Table("favorites").
		Select(`favorites.id,
			favorites.user_id,
			favorites.location_id,
			favorites.note,
			favorites.created_at,
			locations.name AS location_name,
			locations.location_type,
			locations.main_image,
			locations.is_verified,
			producer_profiles.business_name AS producer_name,
			addresses.latitude,
			addresses.longitude,
			addresses.city,
			addresses.state,
			(SELECT COUNT(*) FROM location_products lp WHERE lp.location_id = locations.id) AS product_count`).
		Joins("JOIN locations ON locations.id = favorites.location_id").
		Joins("JOIN addresses ON addresses.id = locations.address_id").
		Joins("JOIN producer_profiles ON producer_profiles.user_id = locations.producer_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(rows))
	for _, row := range rows {
		favorites = append(favorites, &entity.Favorite{
			ID:         row.ID,
			UserID:     row.UserID,
			LocationID: row.LocationID,
			Note:       row.Note,
			CreatedAt:  row.CreatedAt,
			Location: &entity.LocationMarker{
				ID:           row.LocationID,
				Name:         row.LocationName,
				LocationType: row.LocationType,
				ProducerName: row.ProducerName,
				MainImage:    row.MainImage,
				Latitude:     row.Latitude,
				Longitude:    row.Longitude,
				City:         row.City,
				State:        row.State,
				ProductCount: row.ProductCount,
				IsVerified:   row.IsVerified,
			},
		})
	}

	return favorites, nil
}

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

// producerRepository implements the domain.ProducerRepository interface using GORM.
type producerRepository struct {
	db *gorm.DB
}

// NewProducerRepository is the constructor for producerRepository.
func NewProducerRepository(db *gorm.DB) repository.ProducerRepository {
	return &producerRepository{db: db}
}

// Create persists a new producer profile for a user.
func (repo *producerRepository) Create(ctx context.Context, profile *entity.ProducerProfile) error {
	profileM := fromProducerDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create producer profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves the profile owned by the given user.
func (repo *producerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ProducerProfile, error) {
	var profileM model.ProducerProfileModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProducerNotFound
		}

		return nil, errors.Wrap(err, "failed to find producer profile")
	}

	return toProducerDomain(&profileM), nil
}

// Update saves an existing profile. All columns are overwritten from the entity.
func (repo *producerRepository) Update(ctx context.Context, profile *entity.ProducerProfile) error {
	profileM := fromProducerDomain(profile)

	if err := repo.db.WithContext(ctx).Omit("Locations").Save(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update producer profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toProducerDomain(data *model.ProducerProfileModel) *entity.ProducerProfile {
	if data == nil {
		return nil
	}

	return &entity.ProducerProfile{
		UserID:                  data.UserID,
		BusinessName:            data.BusinessName,
		Description:             data.Description,
		CoverImage:              data.CoverImage,
		HasOrganicCertification: data.HasOrganicCertification,
		CertificationDetails:    data.CertificationDetails,
		Website:                 data.Website,
		Instagram:               data.Instagram,
		Whatsapp:                data.Whatsapp,
		IsVerified:              data.IsVerified,
		IsActive:                data.IsActive,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

func fromProducerDomain(data *entity.ProducerProfile) *model.ProducerProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProducerProfileModel{
		UserID:                  data.UserID,
		BusinessName:            data.BusinessName,
		Description:             data.Description,
		CoverImage:              data.CoverImage,
		HasOrganicCertification: data.HasOrganicCertification,
		CertificationDetails:    data.CertificationDetails,
		Website:                 data.Website,
		Instagram:               data.Instagram,
		Whatsapp:                data.Whatsapp,
		IsVerified:              data.IsVerified,
		IsActive:                data.IsActive,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

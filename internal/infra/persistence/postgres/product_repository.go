package postgres

import (
	"context"

	"organico/internal/domain/entity"
	"organico/internal/domain/repository"
	"organico/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
// The catalog is read-mostly; rows are seeded administratively.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves an active product.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND is_active = ?", id, true).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves the active products for the given IDs. Any ID that does
// not resolve to an active product fails the whole lookup.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	var productMs []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	if len(productMs) != len(unique) {
		return nil, repository.ErrProductNotFound
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// List returns active products matching the query.
func (repo *productRepository) List(ctx context.Context, query *repository.ProductQuery) ([]*entity.Product, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Preload("Category").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.is_active = ?", true)

	if query.CategoryID != nil {
		tx = tx.Where("products.category_id = ?", *query.CategoryID)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where(
			"products.name ILIKE ? OR products.description ILIKE ? OR categories.name ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	direction := "ASC"
	if query.Descending {
		direction = "DESC"
	}
	switch query.OrderBy {
	case "created_at":
		tx = tx.Order("products.created_at " + direction)
	default:
		tx = tx.Order("products.name " + direction)
	}

	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}

	var productMs []*model.ProductModel
	if err := tx.Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// ListCategories returns all categories ordered by name.
func (repo *productRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []*model.CategoryModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		CategoryID:  data.CategoryID,
		Description: data.Description,
		Image:       data.Image,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Category != nil {
		product.CategoryName = data.Category.Name
	}

	return product
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Icon:        data.Icon,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

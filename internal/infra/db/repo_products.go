package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blueprint/internal/domain"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context, search string, strict bool, categoryID *uuid.UUID, page domain.PageRequest) ([]domain.Product, int64, error) {
	if r.db == nil {
		return nil, 0, errDBUnavailable
	}
	page = page.Normalize()

	query := r.db.WithContext(ctx).Model(&ProductModel{})
	switch {
	case search == "":
	case strict:
		query = query.Where("name = ?", search)
	default:
		query = query.Where("name ILIKE ?", "%"+escapeLike(search)+"%")
	}
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []ProductModel
	err := query.
		Preload("Category").
		Order("name").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	products := make([]domain.Product, 0, len(models))
	for _, model := range models {
		products = append(products, productFromModel(model))
	}
	return products, total, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model ProductModel
	err := r.db.WithContext(ctx).Preload("Category").First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	product := productFromModel(model)
	return &product, nil
}

func (r *ProductRepository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model ProductModel
	err := r.db.WithContext(ctx).Preload("Category").First(&model, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	product := productFromModel(model)
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product domain.Product) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := ProductModel{
		ID:        product.ID,
		Name:      product.Name,
		CreatedAt: product.CreatedAt,
	}
	if product.Category != nil {
		id := product.Category.ID
		model.CategoryID = &id
	}
	err := r.db.WithContext(ctx).Create(&model).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	return err
}

func (r *ProductRepository) Update(ctx context.Context, product domain.Product) error {
	if r.db == nil {
		return errDBUnavailable
	}
	updates := map[string]any{
		"name":        product.Name,
		"category_id": nil,
	}
	if product.Category != nil {
		updates["category_id"] = product.Category.ID
	}
	result := r.db.WithContext(ctx).Model(&ProductModel{}).Where("id = ?", product.ID).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.db == nil {
		return errDBUnavailable
	}
	return r.db.WithContext(ctx).Delete(&ProductModel{}, "id = ?", id).Error
}

func productFromModel(model ProductModel) domain.Product {
	product := domain.Product{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
	if model.Category != nil {
		category := categoryFromModel(*model.Category)
		product.Category = &category
	}
	return product
}

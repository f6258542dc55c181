package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blueprint/internal/domain"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context, search string, strict bool, page domain.PageRequest) ([]domain.Category, int64, error) {
	if r.db == nil {
		return nil, 0, errDBUnavailable
	}
	page = page.Normalize()

	query := r.db.WithContext(ctx).Model(&CategoryModel{})
	switch {
	case search == "":
	case strict:
		query = query.Where("name = ?", search)
	default:
		query = query.Where("name ILIKE ?", "%"+escapeLike(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []CategoryModel
	err := query.
		Order("name").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	categories := make([]domain.Category, 0, len(models))
	for _, model := range models {
		categories = append(categories, categoryFromModel(model))
	}
	return categories, total, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model CategoryModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	category := categoryFromModel(model)
	return &category, nil
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model CategoryModel
	err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	category := categoryFromModel(model)
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) error {
	if r.db == nil {
		return errDBUnavailable
	}
	model := CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
	err := r.db.WithContext(ctx).Create(&model).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) error {
	if r.db == nil {
		return errDBUnavailable
	}
	result := r.db.WithContext(ctx).Model(&CategoryModel{}).
		Where("id = ?", category.ID).
		Update("name", category.Name)
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

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.db == nil {
		return errDBUnavailable
	}
	return r.db.WithContext(ctx).Delete(&CategoryModel{}, "id = ?", id).Error
}

func categoryFromModel(model CategoryModel) domain.Category {
	return domain.Category{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
}

package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blueprint/internal/domain"
)

type UserRoleRepository struct {
	db *gorm.DB
}

func NewUserRoleRepository(db *gorm.DB) *UserRoleRepository {
	return &UserRoleRepository{db: db}
}

func (r *UserRoleRepository) List(ctx context.Context, page domain.PageRequest) ([]domain.UserRole, int64, error) {
	if r.db == nil {
		return nil, 0, errDBUnavailable
	}
	page = page.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&UserRoleModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []UserRoleModel
	err := r.db.WithContext(ctx).
		Preload("Authorities").
		Order("name").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	roles := make([]domain.UserRole, 0, len(models))
	for _, model := range models {
		roles = append(roles, roleFromModel(model))
	}
	return roles, total, nil
}

func (r *UserRoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserRole, error) {
	if r.db == nil {
		return nil, errDBUnavailable
	}
	var model UserRoleModel
	err := r.db.WithContext(ctx).
		Preload("Authorities").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	role := roleFromModel(model)
	return &role, nil
}

func roleFromModel(model UserRoleModel) domain.UserRole {
	authorities := make([]domain.Authority, 0, len(model.Authorities))
	for _, entry := range model.Authorities {
		authority, err := domain.ParseAuthority(entry.Authority)
		if err != nil {
			// Unknown tags are skipped rather than granted.
			continue
		}
		authorities = append(authorities, authority)
	}
	return domain.UserRole{
		ID:          model.ID,
		Name:        model.Name,
		Authorities: authorities,
		CreatedAt:   model.CreatedAt,
	}
}

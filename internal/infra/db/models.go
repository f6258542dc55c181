package db

import (
	"time"

	"github.com/google/uuid"
)

type UserRoleModel struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Name        string               `gorm:"size:100;uniqueIndex;not null"`
	Authorities []RoleAuthorityModel `gorm:"foreignKey:UserRoleID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time            `gorm:"not null"`
}

func (UserRoleModel) TableName() string { return "user_roles" }

type RoleAuthorityModel struct {
	UserRoleID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Authority  string    `gorm:"size:50;primaryKey"`
}

func (RoleAuthorityModel) TableName() string { return "user_role_authorities" }

type UserModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Email        string         `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string         `gorm:"size:200;not null"`
	RoleID       uuid.UUID      `gorm:"type:uuid;index;not null"`
	Role         *UserRoleModel `gorm:"foreignKey:RoleID"`
	CreatedAt    time.Time      `gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CategoryModel) TableName() string { return "categories" }

type ProductModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name       string         `gorm:"size:100;uniqueIndex;not null"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index"`
	Category   *CategoryModel `gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time      `gorm:"not null"`
}

func (ProductModel) TableName() string { return "products" }

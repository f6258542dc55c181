package usecase

import (
	"context"

	"github.com/google/uuid"

	"blueprint/internal/domain"
)

type CategoryRepository interface {
	List(ctx context.Context, search string, strict bool, page domain.PageRequest) ([]domain.Category, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	Create(ctx context.Context, category domain.Category) error
	Update(ctx context.Context, category domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductRepository interface {
	List(ctx context.Context, search string, strict bool, categoryID *uuid.UUID, page domain.PageRequest) ([]domain.Product, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) error
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	List(ctx context.Context, search string, strict bool, page domain.PageRequest) ([]domain.User, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) error
	Update(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRoleRepository interface {
	List(ctx context.Context, page domain.PageRequest) ([]domain.UserRole, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserRole, error)
}

// PasswordHasher is implemented by the bcrypt adapter.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, storedHash string) bool
}

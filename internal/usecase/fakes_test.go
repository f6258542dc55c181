package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"blueprint/internal/domain"
)

type fakeCategories struct {
	data map[uuid.UUID]domain.Category
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{data: make(map[uuid.UUID]domain.Category)}
}

func (f *fakeCategories) List(_ context.Context, search string, strict bool, _ domain.PageRequest) ([]domain.Category, int64, error) {
	out := make([]domain.Category, 0, len(f.data))
	for _, category := range f.data {
		switch {
		case search == "":
		case strict && category.Name != search:
			continue
		case !strict && !strings.Contains(category.Name, search):
			continue
		}
		out = append(out, category)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCategories) GetByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	category, ok := f.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &category, nil
}

func (f *fakeCategories) GetByName(_ context.Context, name string) (*domain.Category, error) {
	for _, category := range f.data {
		if category.Name == name {
			return &category, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCategories) Create(_ context.Context, category domain.Category) error {
	f.data[category.ID] = category
	return nil
}

func (f *fakeCategories) Update(_ context.Context, category domain.Category) error {
	if _, ok := f.data[category.ID]; !ok {
		return domain.ErrNotFound
	}
	f.data[category.ID] = category
	return nil
}

func (f *fakeCategories) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.data, id)
	return nil
}

type fakeProducts struct {
	data map[uuid.UUID]domain.Product
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{data: make(map[uuid.UUID]domain.Product)}
}

func (f *fakeProducts) List(_ context.Context, search string, strict bool, categoryID *uuid.UUID, _ domain.PageRequest) ([]domain.Product, int64, error) {
	out := make([]domain.Product, 0, len(f.data))
	for _, product := range f.data {
		if categoryID != nil && (product.Category == nil || product.Category.ID != *categoryID) {
			continue
		}
		switch {
		case search == "":
		case strict && product.Name != search:
			continue
		case !strict && !strings.Contains(product.Name, search):
			continue
		}
		out = append(out, product)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProducts) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	product, ok := f.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &product, nil
}

func (f *fakeProducts) GetByName(_ context.Context, name string) (*domain.Product, error) {
	for _, product := range f.data {
		if product.Name == name {
			return &product, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProducts) Create(_ context.Context, product domain.Product) error {
	f.data[product.ID] = product
	return nil
}

func (f *fakeProducts) Update(_ context.Context, product domain.Product) error {
	if _, ok := f.data[product.ID]; !ok {
		return domain.ErrNotFound
	}
	f.data[product.ID] = product
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.data, id)
	return nil
}

type fakeUsers struct {
	data map[uuid.UUID]domain.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{data: make(map[uuid.UUID]domain.User)}
}

func (f *fakeUsers) List(_ context.Context, search string, strict bool, _ domain.PageRequest) ([]domain.User, int64, error) {
	out := make([]domain.User, 0, len(f.data))
	for _, user := range f.data {
		switch {
		case search == "":
		case strict && user.Email != search:
			continue
		case !strict && !strings.Contains(user.Email, search):
			continue
		}
		out = append(out, user)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := f.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.data {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, user domain.User) error {
	f.data[user.ID] = user
	return nil
}

func (f *fakeUsers) Update(_ context.Context, user domain.User) error {
	if _, ok := f.data[user.ID]; !ok {
		return domain.ErrNotFound
	}
	f.data[user.ID] = user
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.data, id)
	return nil
}

type fakeRoles struct {
	data map[uuid.UUID]domain.UserRole
}

func newFakeRoles() *fakeRoles {
	return &fakeRoles{data: make(map[uuid.UUID]domain.UserRole)}
}

func (f *fakeRoles) List(_ context.Context, _ domain.PageRequest) ([]domain.UserRole, int64, error) {
	out := make([]domain.UserRole, 0, len(f.data))
	for _, role := range f.data {
		out = append(out, role)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRoles) GetByID(_ context.Context, id uuid.UUID) (*domain.UserRole, error) {
	role, ok := f.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &role, nil
}

// plainHasher marks hashes so tests can tell hashed from stored values
// without paying bcrypt cost.
type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (plainHasher) Verify(plaintext, storedHash string) bool {
	return storedHash == "hashed:"+plaintext
}

package http

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"blueprint/internal/domain"
)

// In-memory repositories backing the handler tests.

type memRoles struct {
	mu    sync.Mutex
	roles map[uuid.UUID]domain.UserRole
}

func newMemRoles() *memRoles {
	return &memRoles{roles: make(map[uuid.UUID]domain.UserRole)}
}

func (m *memRoles) List(_ context.Context, page domain.PageRequest) ([]domain.UserRole, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.UserRole, 0, len(m.roles))
	for _, role := range m.roles {
		out = append(out, role)
	}
	return out, int64(len(out)), nil
}

func (m *memRoles) GetByID(_ context.Context, id uuid.UUID) (*domain.UserRole, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	role, ok := m.roles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &role, nil
}

type memUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[uuid.UUID]domain.User)}
}

func (m *memUsers) List(_ context.Context, search string, strict bool, page domain.PageRequest) ([]domain.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.User, 0, len(m.users))
	for _, user := range m.users {
		switch {
		case search == "":
		case strict && user.Email != search:
			continue
		case !strict && !strings.Contains(strings.ToLower(user.Email), strings.ToLower(search)):
			continue
		}
		out = append(out, user)
	}
	return out, int64(len(out)), nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUsers) Create(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return domain.ErrConflict
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUsers) Update(_ context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range m.users {
		if id != user.ID && existing.Email == user.Email {
			return domain.ErrConflict
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUsers) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

type memCategories struct {
	mu         sync.Mutex
	categories map[uuid.UUID]domain.Category
}

func newMemCategories() *memCategories {
	return &memCategories{categories: make(map[uuid.UUID]domain.Category)}
}

func (m *memCategories) List(_ context.Context, search string, strict bool, page domain.PageRequest) ([]domain.Category, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Category, 0, len(m.categories))
	for _, category := range m.categories {
		switch {
		case search == "":
		case strict && category.Name != search:
			continue
		case !strict && !strings.Contains(strings.ToLower(category.Name), strings.ToLower(search)):
			continue
		}
		out = append(out, category)
	}
	return out, int64(len(out)), nil
}

func (m *memCategories) GetByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	category, ok := m.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &category, nil
}

func (m *memCategories) GetByName(_ context.Context, name string) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, category := range m.categories {
		if category.Name == name {
			return &category, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memCategories) Create(_ context.Context, category domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.categories {
		if existing.Name == category.Name {
			return domain.ErrConflict
		}
	}
	m.categories[category.ID] = category
	return nil
}

func (m *memCategories) Update(_ context.Context, category domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[category.ID]; !ok {
		return domain.ErrNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *memCategories) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, id)
	return nil
}

type memProducts struct {
	mu       sync.Mutex
	products map[uuid.UUID]domain.Product
}

func newMemProducts() *memProducts {
	return &memProducts{products: make(map[uuid.UUID]domain.Product)}
}

func (m *memProducts) List(_ context.Context, search string, strict bool, categoryID *uuid.UUID, page domain.PageRequest) ([]domain.Product, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Product, 0, len(m.products))
	for _, product := range m.products {
		switch {
		case search == "":
		case strict && product.Name != search:
			continue
		case !strict && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(search)):
			continue
		}
		if categoryID != nil {
			if product.Category == nil || product.Category.ID != *categoryID {
				continue
			}
		}
		out = append(out, product)
	}
	return out, int64(len(out)), nil
}

func (m *memProducts) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	product, ok := m.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &product, nil
}

func (m *memProducts) GetByName(_ context.Context, name string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, product := range m.products {
		if product.Name == name {
			return &product, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memProducts) Create(_ context.Context, product domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.products {
		if existing.Name == product.Name {
			return domain.ErrConflict
		}
	}
	m.products[product.ID] = product
	return nil
}

func (m *memProducts) Update(_ context.Context, product domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *memProducts) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

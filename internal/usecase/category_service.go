package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"blueprint/internal/domain"
)

// Access rules for category operations. Declared once and evaluated by
// the injected authorizer at each entry point.
var (
	ruleReadCategory   = domain.RequireAuthority(domain.AuthorityReadCategory)
	ruleCreateCategory = domain.RequireAuthority(domain.AuthorityCreateCategory)
	ruleUpdateCategory = domain.RequireAuthority(domain.AuthorityUpdateCategory)
	ruleDeleteCategory = domain.RequireAuthority(domain.AuthorityDeleteCategory)
)

type CategoryService struct {
	categories CategoryRepository
	authz      domain.Authorizer
}

func NewCategoryService(categories CategoryRepository, authz domain.Authorizer) *CategoryService {
	return &CategoryService{categories: categories, authz: authz}
}

func (s *CategoryService) Find(ctx context.Context, sec *domain.SecurityContext, search string, strict bool, page domain.PageRequest) ([]domain.Category, int64, error) {
	if err := s.authz.Require(sec, ruleReadCategory, uuid.Nil); err != nil {
		return nil, 0, err
	}
	return s.categories.List(ctx, search, strict, page)
}

func (s *CategoryService) Get(ctx context.Context, sec *domain.SecurityContext, id uuid.UUID) (*domain.Category, error) {
	if err := s.authz.Require(sec, ruleReadCategory, uuid.Nil); err != nil {
		return nil, err
	}
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, sec *domain.SecurityContext, name string) (uuid.UUID, error) {
	if err := s.authz.Require(sec, ruleCreateCategory, uuid.Nil); err != nil {
		return uuid.Nil, err
	}
	if err := s.assertNameFree(ctx, name); err != nil {
		return uuid.Nil, err
	}
	category := domain.Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return uuid.Nil, err
	}
	return category.ID, nil
}

func (s *CategoryService) Update(ctx context.Context, sec *domain.SecurityContext, id uuid.UUID, name string) error {
	if err := s.authz.Require(sec, ruleUpdateCategory, uuid.Nil); err != nil {
		return err
	}
	existing, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Name != name {
		if err := s.assertNameFree(ctx, name); err != nil {
			return err
		}
	}
	existing.Name = name
	return s.categories.Update(ctx, *existing)
}

// Delete removes the category if present; a missing id is a no-op.
func (s *CategoryService) Delete(ctx context.Context, sec *domain.SecurityContext, id uuid.UUID) error {
	if err := s.authz.Require(sec, ruleDeleteCategory, uuid.Nil); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}

func (s *CategoryService) assertNameFree(ctx context.Context, name string) error {
	_, err := s.categories.GetByName(ctx, name)
	if err == nil {
		return domain.ErrConflict
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"blueprint/internal/domain"
)

var (
	ruleReadProduct   = domain.RequireAuthority(domain.AuthorityReadProduct)
	ruleCreateProduct = domain.RequireAuthority(domain.AuthorityCreateProduct)
	ruleUpdateProduct = domain.RequireAuthority(domain.AuthorityUpdateProduct)
	ruleDeleteProduct = domain.RequireAuthority(domain.AuthorityDeleteProduct)
)

type ProductService struct {
	products   ProductRepository
	categories CategoryRepository
	authz      domain.Authorizer
}

func NewProductService(products ProductRepository, categories CategoryRepository, authz domain.Authorizer) *ProductService {
	return &ProductService{products: products, categories: categories, authz: authz}
}

func (s *ProductService) Find(ctx context.Context, sec *domain.SecurityContext, search string, strict bool, categoryID *uuid.UUID, page domain.PageRequest) ([]domain.Product, int64, error) {
	if err := s.authz.Require(sec, ruleReadProduct, uuid.Nil); err != nil {
		return nil, 0, err
	}
	if categoryID != nil {
		// Filtering by an unknown category is an error, not an empty page.
		if _, err := s.categories.GetByID(ctx, *categoryID); err != nil {
			return nil, 0, err
		}
	}
	return s.products.List(ctx, search, strict, categoryID, page)
}

func (s *ProductService) Get(ctx context.Context, sec *domain.SecurityContext, id uuid.UUID) (*domain.Product, error) {
	if err := s.authz.Require(sec, ruleReadProduct, uuid.Nil); err != nil {
		return nil, err
	}
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, sec *domain.SecurityContext, name string, categoryID *uuid.UUID) (uuid.UUID, error) {
	if err := s.authz.Require(sec, ruleCreateProduct, uuid.Nil); err != nil {
		return uuid.Nil, err
	}
	if err := s.assertNameFree(ctx, name); err != nil {
		return uuid.Nil, err
	}
	category, err := s.resolveCategory(ctx, categoryID)
	if err != nil {
		return uuid.Nil, err
	}
	product := domain.Product{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.products.Create(ctx, product); err != nil {
		return uuid.Nil, err
	}
	return product.ID, nil
}

func (s *ProductService) Update(ctx context.Context, sec *domain.SecurityContext, id uuid.UUID, name string, categoryID *uuid.UUID) error {
	if err := s.authz.Require(sec, ruleUpdateProduct, uuid.Nil); err != nil {
		return err
	}
	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Name != name {
		if err := s.assertNameFree(ctx, name); err != nil {
			return err
		}
	}
	category, err := s.resolveCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	existing.Name = name
	existing.Category = category
	return s.products.Update(ctx, *existing)
}

// Delete removes the product if present; a missing id is a no-op.
func (s *ProductService) Delete(ctx context.Context, sec *domain.SecurityContext, id uuid.UUID) error {
	if err := s.authz.Require(sec, ruleDeleteProduct, uuid.Nil); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

func (s *ProductService) resolveCategory(ctx context.Context, categoryID *uuid.UUID) (*domain.Category, error) {
	if categoryID == nil {
		return nil, nil
	}
	return s.categories.GetByID(ctx, *categoryID)
}

func (s *ProductService) assertNameFree(ctx context.Context, name string) error {
	_, err := s.products.GetByName(ctx, name)
	if err == nil {
		return domain.ErrConflict
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

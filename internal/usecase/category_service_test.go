package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"blueprint/internal/domain"
	"blueprint/internal/infra/auth/rbac"
)

func catalogContext() *domain.SecurityContext {
	return &domain.SecurityContext{
		Principal: domain.Principal{ID: uuid.New(), Username: "catalog@example.com"},
		Authorities: []domain.Authority{
			domain.AuthorityCreateCategory, domain.AuthorityReadCategory,
			domain.AuthorityUpdateCategory, domain.AuthorityDeleteCategory,
			domain.AuthorityCreateProduct, domain.AuthorityReadProduct,
			domain.AuthorityUpdateProduct, domain.AuthorityDeleteProduct,
		},
	}
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	svc := NewCategoryService(newFakeCategories(), rbac.NewEvaluator())
	ctx := context.Background()

	if _, err := svc.Create(ctx, catalogContext(), "drinks"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, catalogContext(), "drinks"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCategoryUpdateSameNameSkipsConflictCheck(t *testing.T) {
	svc := NewCategoryService(newFakeCategories(), rbac.NewEvaluator())
	ctx := context.Background()

	id, err := svc.Create(ctx, catalogContext(), "drinks")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// Saving the record under its current name must not trip the
	// uniqueness check against itself.
	if err := svc.Update(ctx, catalogContext(), id, "drinks"); err != nil {
		t.Fatalf("update: %v", err)
	}
}

func TestCategoryUpdateToTakenName(t *testing.T) {
	svc := NewCategoryService(newFakeCategories(), rbac.NewEvaluator())
	ctx := context.Background()

	if _, err := svc.Create(ctx, catalogContext(), "drinks"); err != nil {
		t.Fatalf("create: %v", err)
	}
	id, err := svc.Create(ctx, catalogContext(), "snacks")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Update(ctx, catalogContext(), id, "drinks"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCategoryDeleteMissingIsNoop(t *testing.T) {
	svc := NewCategoryService(newFakeCategories(), rbac.NewEvaluator())
	if err := svc.Delete(context.Background(), catalogContext(), uuid.New()); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestCategoryAnonymousDenied(t *testing.T) {
	svc := NewCategoryService(newFakeCategories(), rbac.NewEvaluator())
	if _, _, err := svc.Find(context.Background(), nil, "", false, domain.PageRequest{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCategoryGetUnknown(t *testing.T) {
	svc := NewCategoryService(newFakeCategories(), rbac.NewEvaluator())
	if _, err := svc.Get(context.Background(), catalogContext(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

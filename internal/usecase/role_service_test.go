package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"blueprint/internal/domain"
	"blueprint/internal/infra/auth/rbac"
)

func TestRoleReadRequiresAuthenticationOnly(t *testing.T) {
	roles := newFakeRoles()
	role := domain.UserRole{ID: uuid.New(), Name: "reader"}
	roles.data[role.ID] = role
	svc := NewRoleService(roles, rbac.NewEvaluator())
	ctx := context.Background()

	if _, _, err := svc.Find(ctx, nil, domain.PageRequest{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("anonymous find: %v", err)
	}

	// A principal with no authorities at all can still read roles.
	sec := &domain.SecurityContext{Principal: domain.Principal{ID: uuid.New(), Username: "bob@example.com"}}
	got, err := svc.Get(ctx, sec, role.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "reader" {
		t.Fatalf("Name = %q", got.Name)
	}
	items, total, err := svc.Find(ctx, sec, domain.PageRequest{})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("items = %d, total = %d", len(items), total)
	}
}

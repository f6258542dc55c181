package usecase

import (
	"context"

	"github.com/google/uuid"

	"blueprint/internal/domain"
)

// Roles are managed out of band; the API only reads them. Any
// authenticated principal may look them up.
var ruleReadRole = domain.RequireAuthenticated()

type RoleService struct {
	roles UserRoleRepository
	authz domain.Authorizer
}

func NewRoleService(roles UserRoleRepository, authz domain.Authorizer) *RoleService {
	return &RoleService{roles: roles, authz: authz}
}

func (s *RoleService) Find(ctx context.Context, sec *domain.SecurityContext, page domain.PageRequest) ([]domain.UserRole, int64, error) {
	if err := s.authz.Require(sec, ruleReadRole, uuid.Nil); err != nil {
		return nil, 0, err
	}
	return s.roles.List(ctx, page)
}

func (s *RoleService) Get(ctx context.Context, sec *domain.SecurityContext, id uuid.UUID) (*domain.UserRole, error) {
	if err := s.authz.Require(sec, ruleReadRole, uuid.Nil); err != nil {
		return nil, err
	}
	return s.roles.GetByID(ctx, id)
}

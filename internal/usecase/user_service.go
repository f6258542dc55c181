package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"blueprint/internal/domain"
)

var (
	ruleListUsers  = domain.RequireAuthority(domain.AuthorityReadUser)
	ruleGetUser    = domain.RequireAuthorityOrSelf(domain.AuthorityReadUser)
	ruleCreateUser = domain.RequireAuthority(domain.AuthorityCreateUser)
	ruleUpdateUser = domain.RequireAuthorityOrSelf(domain.AuthorityUpdateUser)
	ruleDeleteUser = domain.RequireAuthority(domain.AuthorityDeleteUser)
)

type UserService struct {
	users  UserRepository
	roles  UserRoleRepository
	hasher PasswordHasher
	authz  domain.Authorizer
}

func NewUserService(users UserRepository, roles UserRoleRepository, hasher PasswordHasher, authz domain.Authorizer) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher, authz: authz}
}

func (s *UserService) Find(ctx context.Context, sec *domain.SecurityContext, search string, strict bool, page domain.PageRequest) ([]domain.User, int64, error) {
	if err := s.authz.Require(sec, ruleListUsers, uuid.Nil); err != nil {
		return nil, 0, err
	}
	return s.users.List(ctx, search, strict, page)
}

// Get is readable by anyone holding READ_USER, or by the user itself.
func (s *UserService) Get(ctx context.Context, sec *domain.SecurityContext, id uuid.UUID) (*domain.User, error) {
	if err := s.authz.Require(sec, ruleGetUser, id); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, sec *domain.SecurityContext, email, password string, roleID uuid.UUID) (uuid.UUID, error) {
	if err := s.authz.Require(sec, ruleCreateUser, uuid.Nil); err != nil {
		return uuid.Nil, err
	}
	if err := s.assertEmailFree(ctx, email); err != nil {
		return uuid.Nil, err
	}
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return uuid.Nil, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return uuid.Nil, err
	}
	user := domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         *role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

// Update is allowed for UPDATE_USER holders or the user itself. A blank
// password keeps the stored hash; an absent role keeps the stored role.
func (s *UserService) Update(ctx context.Context, sec *domain.SecurityContext, id uuid.UUID, email, password string, roleID *uuid.UUID) error {
	if err := s.authz.Require(sec, ruleUpdateUser, id); err != nil {
		return err
	}
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Email != email {
		if err := s.assertEmailFree(ctx, email); err != nil {
			return err
		}
	}
	role := existing.Role
	if roleID != nil {
		resolved, err := s.roles.GetByID(ctx, *roleID)
		if err != nil {
			return err
		}
		role = *resolved
	}
	hash := existing.PasswordHash
	if strings.TrimSpace(password) != "" {
		hash, err = s.hasher.Hash(password)
		if err != nil {
			return err
		}
	}
	existing.Email = email
	existing.PasswordHash = hash
	existing.Role = role
	return s.users.Update(ctx, *existing)
}

// Delete removes the user if present; a missing id is a no-op.
func (s *UserService) Delete(ctx context.Context, sec *domain.SecurityContext, id uuid.UUID) error {
	if err := s.authz.Require(sec, ruleDeleteUser, uuid.Nil); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

func (s *UserService) assertEmailFree(ctx context.Context, email string) error {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return domain.ErrConflict
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is a named bundle of authorities. Many users may share one
// role; the core treats it as read-only.
type UserRole struct {
	ID          uuid.UUID
	Name        string
	Authorities []Authority
	CreatedAt   time.Time
}

// HasAuthority reports whether the role carries the given authority.
func (r UserRole) HasAuthority(authority Authority) bool {
	for _, a := range r.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// User is the stored identity record. Email doubles as the login
// username. PasswordHash is a bcrypt hash, never a plaintext password.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

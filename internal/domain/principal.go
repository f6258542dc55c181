package domain

import "github.com/google/uuid"

// Principal is the authenticated identity for the duration of one
// request. It is constructed once by the authorization gate and never
// mutated afterwards.
type Principal struct {
	ID       uuid.UUID
	Username string
	Role     UserRole
}

// SecurityContext binds a principal to its live authority set plus
// request metadata. It is request-scoped: created fresh per request and
// discarded with it. A nil *SecurityContext means anonymous.
type SecurityContext struct {
	Principal   Principal
	Authorities []Authority
	RemoteAddr  string
}

// HasAuthority reports whether the context's derived authority set
// contains the given authority.
func (s *SecurityContext) HasAuthority(authority Authority) bool {
	if s == nil {
		return false
	}
	for _, a := range s.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// NewSecurityContext derives the authority set live from the user's
// role. The token's role claim is deliberately not an input here.
func NewSecurityContext(user User, remoteAddr string) *SecurityContext {
	authorities := make([]Authority, len(user.Role.Authorities))
	copy(authorities, user.Role.Authorities)
	return &SecurityContext{
		Principal: Principal{
			ID:       user.ID,
			Username: user.Email,
			Role:     user.Role,
		},
		Authorities: authorities,
		RemoteAddr:  remoteAddr,
	}
}

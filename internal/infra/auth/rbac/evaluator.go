// Package rbac evaluates declared access rules against the per-request
// security context. It is the only place authorization decisions are
// made; operations declare a rule value and call through here.
package rbac

import (
	"errors"

	"github.com/google/uuid"

	"blueprint/internal/domain"
)

// DenyError records why a rule failed. The code is for server-side
// logging only; clients always see a generic forbidden response.
type DenyError struct {
	Code string
	Err  error
}

func (e *DenyError) Error() string {
	if e == nil {
		return ""
	}
	return e.Code
}

func (e *DenyError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Require evaluates rule against sec. A nil context fails every rule.
// resourceID participates only in self-match rules and is compared by
// exact equality against the principal id.
func (e *Evaluator) Require(sec *domain.SecurityContext, rule domain.Rule, resourceID uuid.UUID) error {
	if sec == nil {
		return &DenyError{Code: "NO_CONTEXT", Err: domain.ErrForbidden}
	}
	switch rule.Kind {
	case domain.RuleAuthenticated:
		return nil
	case domain.RuleAuthority:
		if sec.HasAuthority(rule.Authority) {
			return nil
		}
		return &DenyError{Code: "MISSING_AUTHORITY", Err: domain.ErrForbidden}
	case domain.RuleAuthorityOrSelf:
		if sec.HasAuthority(rule.Authority) {
			return nil
		}
		if resourceID != uuid.Nil && sec.Principal.ID == resourceID {
			return nil
		}
		return &DenyError{Code: "MISSING_AUTHORITY", Err: domain.ErrForbidden}
	default:
		return &DenyError{Code: "UNKNOWN_RULE", Err: domain.ErrForbidden}
	}
}

// IsDenyError unwraps a DenyError from err if present.
func IsDenyError(err error) (*DenyError, bool) {
	var deny *DenyError
	if errors.As(err, &deny) {
		return deny, true
	}
	return nil, false
}

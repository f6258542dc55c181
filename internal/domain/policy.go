package domain

import "github.com/google/uuid"

// RuleKind discriminates the forms an operation's access rule can take.
type RuleKind int

const (
	// RuleAuthenticated passes for any established security context.
	RuleAuthenticated RuleKind = iota
	// RuleAuthority passes when the context holds a given authority.
	RuleAuthority
	// RuleAuthorityOrSelf passes when the context holds the authority,
	// or when the principal is the resource being acted on.
	RuleAuthorityOrSelf
)

// Rule is the declared access condition of one operation. Rules are
// static values attached to operations and evaluated centrally; there
// is no expression language.
type Rule struct {
	Kind      RuleKind
	Authority Authority
}

// RequireAuthenticated declares an operation open to any principal.
func RequireAuthenticated() Rule {
	return Rule{Kind: RuleAuthenticated}
}

// RequireAuthority declares a plain authority check.
func RequireAuthority(authority Authority) Rule {
	return Rule{Kind: RuleAuthority, Authority: authority}
}

// RequireAuthorityOrSelf declares an authority check with a
// resource-owner override on the target id.
func RequireAuthorityOrSelf(authority Authority) Rule {
	return Rule{Kind: RuleAuthorityOrSelf, Authority: authority}
}

// Authorizer decides whether a security context satisfies a rule for a
// given resource. resourceID is only consulted by self-match rules.
type Authorizer interface {
	Require(sec *SecurityContext, rule Rule, resourceID uuid.UUID) error
}

// Package jwt issues and verifies the compact signed bearer tokens the
// authentication gate hands out. The codec is a pure function over the
// configured secret: it holds no mutable state and performs no I/O, so
// a single instance serves all requests concurrently.
package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"blueprint/internal/config"
)

var (
	// ErrInvalidToken covers malformed, unsigned or tampered tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken means the signature checked out but exp has passed.
	ErrExpiredToken = errors.New("expired token")
)

// Claims is the payload carried by every issued token. Role is the
// principal's role id at issuance time and serves as an auditing hint
// only; authorities are always re-derived from the store on each
// request, never from this claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a codec from configuration. An empty secret is a
// deployment error and must abort startup, not be tolerated per request.
func NewCodec(cfg config.Config) (*Codec, error) {
	secret := strings.TrimSpace(cfg.JWTSecret)
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	ttl := time.Duration(cfg.JWTExpirationSecs) * time.Second
	if ttl <= 0 {
		return nil, errors.New("JWT_EXPIRATION_SECONDS must be positive")
	}
	return &Codec{
		secret: []byte(secret),
		issuer: cfg.JWTIssuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token asserting the given subject until the configured
// ttl elapses. roleRef is recorded verbatim in the role claim.
func (c *Codec) Issue(subject, roleRef string) (string, error) {
	now := c.now()
	claims := Claims{
		Role: roleRef,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(c.secret)
}

// Verify re-parses the compact string, checks the HS512 signature and
// the expiration, and returns the claims. Expiry is reported as
// ErrExpiredToken; every other defect collapses to ErrInvalidToken.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	).ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

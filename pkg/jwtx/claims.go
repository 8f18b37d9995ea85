package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mohamed-achich/api-gateway/pkg/idx"
)

// Default token TTL constants for the three token kinds the gateway mints.
// These provide sensible security defaults but can be overridden per-deployment.
const (
	// DefaultAccessTokenTTL is the default lifetime for access tokens.
	// Short-lived for security - typical range is 15m to 1h.
	DefaultAccessTokenTTL = 15 * time.Minute

	// DefaultRefreshTokenTTL is the default lifetime for refresh tokens.
	// Longer-lived for user convenience - typical range is 7d to 30d.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour

	// DefaultServiceTokenTTL is the default lifetime for the service tokens
	// the gateway presents to downstream backends.
	DefaultServiceTokenTTL = time.Hour
)

// Kind discriminates the three token types. It travels as an explicit claim
// and is checked on every verify; relying on which secret happened to verify
// is not enough, since deployments can configure identical secrets for
// different kinds.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
	KindService Kind = "service"
)

// Valid reports whether k is one of the known token kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindAccess, KindRefresh, KindService:
		return true
	}
	return false
}

// Claims are the signed claim set for every token the gateway issues. We are
// keeping additive changes to preserve compatibility for later.
type Claims struct {
	jwt.RegisteredClaims

	// Kind tags the token type ("access", "refresh", "service").
	Kind Kind `json:"kind"`

	// Username of the authenticated user. Empty on service tokens.
	Username string `json:"username,omitempty"`

	// Roles held by the user at issuance time. Authorization-relevant
	// decisions re-fetch from the directory instead of trusting these.
	Roles []string `json:"roles,omitempty"`

	// Service names the caller on kind=service tokens. Those tokens carry
	// no subject.
	Service string `json:"service,omitempty"`
}

// NewUserClaims builds minimally-correct claims for an access or refresh
// token bound to an end user.
func NewUserClaims(
	kind Kind,
	subject, username string,
	roles []string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Kind:     kind,
		Username: username,
		Roles:    roles,
	}
}

// NewServiceClaims builds claims for a gateway-to-backend service token.
// There is deliberately no subject: the token identifies a service, not a user.
func NewServiceClaims(serviceName string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Kind:    KindService,
		Service: serviceName,
	}
}

// NewJTI returns a sortable unique identifier for the "jti" claim.
func NewJTI() string {
	return idx.New().String()
}

// ExpiresIn reports the remaining lifetime of the token at time now.
// Returns zero when the token is already expired or carries no expiry.
func (c *Claims) ExpiresIn(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	remaining := c.ExpiresAt.Time.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ValidateKind ensures the embedded kind claim matches the expected one.
// A valid access token must never satisfy a refresh or service check.
func (c *Claims) ValidateKind(expected Kind) error {
	if c.Kind != expected {
		return ErrKindMismatch
	}
	return nil
}

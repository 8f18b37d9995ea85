// Package jwtx issues and verifies the gateway's HS256 tokens. Each token
// kind (access, refresh, service) signs with its own secret and lifetime, and
// every payload carries an explicit kind claim that verification enforces.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrKindMismatch = errors.New("jwtx: token kind mismatch")
	ErrUnknownKind  = errors.New("jwtx: unknown token kind")
)

// Config captures the per-kind signing material and lifetimes.
type Config struct {
	// Issuer is the "iss" claim stamped on every token.
	Issuer string

	AccessSecret  []byte
	RefreshSecret []byte
	ServiceSecret []byte

	// Zero TTLs fall back to the package defaults.
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	ServiceTTL time.Duration
}

// Issuer signs and verifies tokens. Construct once at startup and treat as
// immutable; it is safe for concurrent use.
type Issuer struct {
	cfg Config
}

// NewIssuer validates the config and returns a ready Issuer. All three
// secrets are required even when they are configured identically - kind
// separation is enforced by the claim, not the secret.
func NewIssuer(cfg Config) (*Issuer, error) {
	if len(cfg.AccessSecret) == 0 {
		return nil, errors.New("jwtx: access secret is required")
	}
	if len(cfg.RefreshSecret) == 0 {
		return nil, errors.New("jwtx: refresh secret is required")
	}
	if len(cfg.ServiceSecret) == 0 {
		return nil, errors.New("jwtx: service secret is required")
	}

	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTokenTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTokenTTL
	}
	if cfg.ServiceTTL <= 0 {
		cfg.ServiceTTL = DefaultServiceTokenTTL
	}

	return &Issuer{cfg: cfg}, nil
}

// TTL returns the configured lifetime for the given kind.
func (i *Issuer) TTL(kind Kind) time.Duration {
	switch kind {
	case KindAccess:
		return i.cfg.AccessTTL
	case KindRefresh:
		return i.cfg.RefreshTTL
	case KindService:
		return i.cfg.ServiceTTL
	}
	return 0
}

// IssueUser signs an access or refresh token for the given user identity.
func (i *Issuer) IssueUser(kind Kind, subject, username string, roles []string) (string, error) {
	if kind != KindAccess && kind != KindRefresh {
		return "", ErrUnknownKind
	}

	claims := NewUserClaims(kind, subject, username, roles, i.TTL(kind), i.cfg.Issuer, time.Now().UTC())
	return i.sign(kind, claims)
}

// IssueService signs a service token identifying the named caller.
func (i *Issuer) IssueService(serviceName string) (string, error) {
	claims := NewServiceClaims(serviceName, i.cfg.ServiceTTL, i.cfg.Issuer, time.Now().UTC())
	return i.sign(KindService, claims)
}

// Verify parses the token with the kind-specific secret and validates
// signature, expiry and the embedded kind claim. All failures except clock
// ones collapse into ErrMalformed/ErrInvalidSig so callers don't leak a
// verification oracle.
func (i *Issuer) Verify(token string, kind Kind) (Claims, error) {
	secret, err := i.secret(kind)
	if err != nil {
		return Claims{}, err
	}

	var claims Claims
	_, err = jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if err := claims.ValidateKind(kind); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

func (i *Issuer) sign(kind Kind, claims Claims) (string, error) {
	secret, err := i.secret(kind)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: signing %s token: %w", kind, err)
	}
	return signed, nil
}

func (i *Issuer) secret(kind Kind) ([]byte, error) {
	switch kind {
	case KindAccess:
		return i.cfg.AccessSecret, nil
	case KindRefresh:
		return i.cfg.RefreshSecret, nil
	case KindService:
		return i.cfg.ServiceSecret, nil
	}
	return nil, ErrUnknownKind
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	default:
		return ErrMalformed
	}
}

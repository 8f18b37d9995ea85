package store

import (
	"context"
	"errors"
	"time"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root session-state interface. The concrete driver (redis)
// implements this. It exposes sub-repositories to keep concerns tidy and
// testable. The store is the single source of truth shared by every gateway
// instance; nothing here may be cached in-process.
type Store interface {
	RefreshTokens() RefreshTokens
	Sessions() Sessions
	Blacklist() Blacklist
	Counters() Counters

	// Ping verifies the store connection is still alive.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}

type RefreshTokens interface {
	// Save overwrites the single currently-valid refresh token for the
	// user. Issuing a new token force-invalidates any prior one.
	Save(ctx context.Context, userID, token string, ttl time.Duration) error

	// Get returns the stored refresh token, or ErrNotFound.
	Get(ctx context.Context, userID string) (string, error)

	// Rotate atomically replaces oldToken with newToken, but only when the
	// stored value still equals oldToken. A second concurrent redeem of the
	// same token loses the swap and gets ErrNotFound, which keeps refresh
	// single-winner without any in-process locking.
	Rotate(ctx context.Context, userID, oldToken, newToken string, ttl time.Duration) error

	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, userID string) error
}

type Sessions interface {
	// Save overwrites the user's session record with TTL equal to the
	// remaining access-token lifetime.
	Save(ctx context.Context, session domain.Session, ttl time.Duration) error

	// Get returns the live session, or ErrNotFound once it expired.
	Get(ctx context.Context, userID string) (domain.Session, error)

	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, userID string) error
}

type Blacklist interface {
	// Add marks an access token revoked for the remainder of its lifetime.
	// Entries expire naturally and are never proactively deleted.
	Add(ctx context.Context, token string, ttl time.Duration) error

	// Contains reports whether the token has been revoked. Expired entries
	// read as absent, not as an error.
	Contains(ctx context.Context, token string) (bool, error)
}

type Counters interface {
	// Increment atomically bumps the counter and returns the new value.
	// The first increment of a window starts the TTL; expiry resets the
	// count to zero. Correctness under concurrency rests entirely on the
	// store's atomic increment-and-read.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

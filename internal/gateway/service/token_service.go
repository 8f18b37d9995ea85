package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
	"github.com/mohamed-achich/api-gateway/internal/gateway/store"
	"github.com/mohamed-achich/api-gateway/pkg/jwtx"
	"github.com/mohamed-achich/api-gateway/pkg/slogx"
)

// TokenService owns the token lifecycle: login issues a pair and records the
// session, refresh rotates the pair single-use, logout revokes. All state
// lives in the store so any gateway instance can serve any step.
type TokenService struct {
	issuer    *jwtx.Issuer
	store     store.Store
	directory Directory
}

func NewTokenService(issuer *jwtx.Issuer, st store.Store, directory Directory) *TokenService {
	return &TokenService{issuer: issuer, store: st, directory: directory}
}

// Login issues a fresh token pair for an already-validated identity and
// overwrites any previous session state. Last login wins: the prior refresh
// token stops working, but the prior access token is not blacklisted and
// simply ages out.
func (s *TokenService) Login(ctx context.Context, identity domain.Identity) (domain.TokenPair, error) {
	pair, err := s.issuePair(ctx, identity)
	if err != nil {
		return domain.TokenPair{}, err
	}

	if err := s.store.RefreshTokens().Save(ctx, identity.ID, pair.RefreshToken, s.issuer.TTL(jwtx.KindRefresh)); err != nil {
		return domain.TokenPair{}, fmt.Errorf("saving refresh token: %w", err)
	}
	if err := s.saveSession(ctx, identity, pair.AccessToken); err != nil {
		return domain.TokenPair{}, err
	}

	slogx.FromContext(ctx).Info("user logged in", "user_id", identity.ID)
	return pair, nil
}

// Refresh redeems a refresh token for a new pair. The presented token must
// verify, must match the stored one, and must win the atomic rotation; a
// concurrent redeem of the same token gets ErrInvalidRefresh. Roles are
// re-read from the directory so a changed user picks up current permissions.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	claims, err := s.issuer.Verify(refreshToken, jwtx.KindRefresh)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("%w: %w", ErrInvalidRefresh, err)
	}
	userID := claims.Subject

	stored, err := s.store.RefreshTokens().Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrInvalidRefresh
		}
		return domain.TokenPair{}, fmt.Errorf("loading refresh token: %w", err)
	}
	if stored != refreshToken {
		slogx.FromContext(ctx).Warn("refresh token reuse detected", "user_id", userID)
		return domain.TokenPair{}, ErrInvalidRefresh
	}

	identity, err := s.directory.FindOne(ctx, userID)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.TokenPair{}, ErrInvalidRefresh
		}
		return domain.TokenPair{}, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	pair, err := s.issuePair(ctx, identity)
	if err != nil {
		return domain.TokenPair{}, err
	}

	err = s.store.RefreshTokens().Rotate(ctx, userID, refreshToken, pair.RefreshToken, s.issuer.TTL(jwtx.KindRefresh))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost the swap to a concurrent redeem.
			return domain.TokenPair{}, ErrInvalidRefresh
		}
		return domain.TokenPair{}, fmt.Errorf("rotating refresh token: %w", err)
	}

	if err := s.saveSession(ctx, identity, pair.AccessToken); err != nil {
		return domain.TokenPair{}, err
	}

	return pair, nil
}

// Logout revokes the user's live access token and clears session state.
// Logging out without a live session still succeeds.
func (s *TokenService) Logout(ctx context.Context, userID string) error {
	sess, err := s.store.Sessions().Get(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// Nothing to blacklist; still clear the refresh record.
	case err != nil:
		return fmt.Errorf("loading session: %w", err)
	default:
		if ttl := time.Until(sess.ExpiresAt); ttl > 0 {
			if err := s.store.Blacklist().Add(ctx, sess.AccessToken, ttl); err != nil {
				return fmt.Errorf("blacklisting access token: %w", err)
			}
		}
	}

	if err := s.store.Sessions().Delete(ctx, userID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if err := s.store.RefreshTokens().Delete(ctx, userID); err != nil {
		return fmt.Errorf("deleting refresh token: %w", err)
	}

	slogx.FromContext(ctx).Info("user logged out", "user_id", userID)
	return nil
}

func (s *TokenService) issuePair(_ context.Context, identity domain.Identity) (domain.TokenPair, error) {
	access, err := s.issuer.IssueUser(jwtx.KindAccess, identity.ID, identity.Username, identity.Roles)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("issuing access token: %w", err)
	}
	refresh, err := s.issuer.IssueUser(jwtx.KindRefresh, identity.ID, identity.Username, identity.Roles)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("issuing refresh token: %w", err)
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *TokenService) saveSession(ctx context.Context, identity domain.Identity, accessToken string) error {
	ttl := s.issuer.TTL(jwtx.KindAccess)
	sess := domain.Session{
		UserID:      identity.ID,
		Username:    identity.Username,
		Roles:       identity.Roles,
		AccessToken: accessToken,
		ExpiresAt:   time.Now().UTC().Add(ttl),
	}
	if err := s.store.Sessions().Save(ctx, sess, ttl); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

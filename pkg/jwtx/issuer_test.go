package jwtx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mohamed-achich/api-gateway/pkg/jwtx"
)

func newIssuer(t *testing.T, cfg jwtx.Config) *jwtx.Issuer {
	t.Helper()

	if cfg.AccessSecret == nil {
		cfg.AccessSecret = []byte("access-secret")
	}
	if cfg.RefreshSecret == nil {
		cfg.RefreshSecret = []byte("refresh-secret")
	}
	if cfg.ServiceSecret == nil {
		cfg.ServiceSecret = []byte("service-secret")
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "api-gateway"
	}

	issuer, err := jwtx.NewIssuer(cfg)
	require.NoError(t, err)
	return issuer
}

func TestNewIssuerRequiresSecrets(t *testing.T) {
	_, err := jwtx.NewIssuer(jwtx.Config{
		RefreshSecret: []byte("r"),
		ServiceSecret: []byte("s"),
	})
	require.Error(t, err)

	_, err = jwtx.NewIssuer(jwtx.Config{
		AccessSecret:  []byte("a"),
		ServiceSecret: []byte("s"),
	})
	require.Error(t, err)

	_, err = jwtx.NewIssuer(jwtx.Config{
		AccessSecret:  []byte("a"),
		RefreshSecret: []byte("r"),
	})
	require.Error(t, err)
}

func TestIssuerTTLDefaults(t *testing.T) {
	issuer := newIssuer(t, jwtx.Config{})

	require.Equal(t, jwtx.DefaultAccessTokenTTL, issuer.TTL(jwtx.KindAccess))
	require.Equal(t, jwtx.DefaultRefreshTokenTTL, issuer.TTL(jwtx.KindRefresh))
	require.Equal(t, jwtx.DefaultServiceTokenTTL, issuer.TTL(jwtx.KindService))
}

func TestIssueAndVerifyUserTokens(t *testing.T) {
	issuer := newIssuer(t, jwtx.Config{})

	t.Run("access round trip", func(t *testing.T) {
		token, err := issuer.IssueUser(jwtx.KindAccess, "user-1", "alice", []string{"user", "admin"})
		require.NoError(t, err)

		claims, err := issuer.Verify(token, jwtx.KindAccess)
		require.NoError(t, err)
		require.Equal(t, "user-1", claims.Subject)
		require.Equal(t, "alice", claims.Username)
		require.Equal(t, []string{"user", "admin"}, claims.Roles)
		require.Equal(t, jwtx.KindAccess, claims.Kind)
		require.Equal(t, "api-gateway", claims.Issuer)
		require.NotEmpty(t, claims.ID)
	})

	t.Run("refresh round trip", func(t *testing.T) {
		token, err := issuer.IssueUser(jwtx.KindRefresh, "user-1", "alice", nil)
		require.NoError(t, err)

		claims, err := issuer.Verify(token, jwtx.KindRefresh)
		require.NoError(t, err)
		require.Equal(t, jwtx.KindRefresh, claims.Kind)
	})

	t.Run("refuses to issue service kind", func(t *testing.T) {
		_, err := issuer.IssueUser(jwtx.KindService, "user-1", "alice", nil)
		require.ErrorIs(t, err, jwtx.ErrUnknownKind)
	})
}

func TestIssueAndVerifyServiceToken(t *testing.T) {
	issuer := newIssuer(t, jwtx.Config{})

	token, err := issuer.IssueService("api-gateway")
	require.NoError(t, err)

	claims, err := issuer.Verify(token, jwtx.KindService)
	require.NoError(t, err)
	require.Equal(t, jwtx.KindService, claims.Kind)
	require.Equal(t, "api-gateway", claims.Service)
	require.Empty(t, claims.Subject)
}

func TestVerifyRejectsKindConfusion(t *testing.T) {
	t.Run("distinct secrets", func(t *testing.T) {
		issuer := newIssuer(t, jwtx.Config{})

		access, err := issuer.IssueUser(jwtx.KindAccess, "user-1", "alice", nil)
		require.NoError(t, err)

		// Wrong secret fails before the kind claim is ever consulted.
		_, err = issuer.Verify(access, jwtx.KindRefresh)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("identical secrets", func(t *testing.T) {
		shared := []byte("one-secret-everywhere")
		issuer := newIssuer(t, jwtx.Config{
			AccessSecret:  shared,
			RefreshSecret: shared,
			ServiceSecret: shared,
		})

		access, err := issuer.IssueUser(jwtx.KindAccess, "user-1", "alice", nil)
		require.NoError(t, err)

		// Signature verifies fine here, so only the kind claim can save us.
		_, err = issuer.Verify(access, jwtx.KindRefresh)
		require.ErrorIs(t, err, jwtx.ErrKindMismatch)

		_, err = issuer.Verify(access, jwtx.KindService)
		require.ErrorIs(t, err, jwtx.ErrKindMismatch)

		_, err = issuer.Verify(access, jwtx.KindAccess)
		require.NoError(t, err)
	})
}

func TestVerifyFailureModes(t *testing.T) {
	issuer := newIssuer(t, jwtx.Config{})

	t.Run("garbage token", func(t *testing.T) {
		_, err := issuer.Verify("not-a-jwt", jwtx.KindAccess)
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := issuer.Verify("", jwtx.KindAccess)
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("expired token", func(t *testing.T) {
		short := newIssuer(t, jwtx.Config{AccessTTL: time.Millisecond})
		token, err := short.IssueUser(jwtx.KindAccess, "user-1", "alice", nil)
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			_, err := short.Verify(token, jwtx.KindAccess)
			return err != nil
		}, time.Second, 10*time.Millisecond)

		_, err = short.Verify(token, jwtx.KindAccess)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("token signed elsewhere", func(t *testing.T) {
		other := newIssuer(t, jwtx.Config{AccessSecret: []byte("different")})
		token, err := other.IssueUser(jwtx.KindAccess, "user-1", "alice", nil)
		require.NoError(t, err)

		_, err = issuer.Verify(token, jwtx.KindAccess)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := issuer.Verify("whatever", jwtx.Kind("session"))
		require.ErrorIs(t, err, jwtx.ErrUnknownKind)
	})
}

func TestClaimsExpiresIn(t *testing.T) {
	// Claim timestamps carry whole seconds only.
	now := time.Now().UTC().Truncate(time.Second)
	claims := jwtx.NewUserClaims(jwtx.KindAccess, "user-1", "alice", nil, 15*time.Minute, "api-gateway", now)

	require.Equal(t, 15*time.Minute, claims.ExpiresIn(now))
	require.Equal(t, 5*time.Minute, claims.ExpiresIn(now.Add(10*time.Minute)))
	require.Zero(t, claims.ExpiresIn(now.Add(20*time.Minute)))
}

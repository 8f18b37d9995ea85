package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
	"github.com/mohamed-achich/api-gateway/internal/gateway/store"
	redisstore "github.com/mohamed-achich/api-gateway/internal/gateway/store/drivers/redis"
)

func newTestStore(t *testing.T) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return redisstore.NewStoreFromClient(rdb), mr
}

func TestRefreshTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		st, _ := newTestStore(t)
		repo := st.RefreshTokens()

		require.NoError(t, repo.Save(ctx, "user-1", "tok-a", time.Hour))

		got, err := repo.Get(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, "tok-a", got)
	})

	t.Run("get missing", func(t *testing.T) {
		st, _ := newTestStore(t)

		_, err := st.RefreshTokens().Get(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("save overwrites", func(t *testing.T) {
		st, _ := newTestStore(t)
		repo := st.RefreshTokens()

		require.NoError(t, repo.Save(ctx, "user-1", "tok-a", time.Hour))
		require.NoError(t, repo.Save(ctx, "user-1", "tok-b", time.Hour))

		got, err := repo.Get(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, "tok-b", got)
	})

	t.Run("expires", func(t *testing.T) {
		st, mr := newTestStore(t)
		repo := st.RefreshTokens()

		require.NoError(t, repo.Save(ctx, "user-1", "tok-a", time.Minute))
		mr.FastForward(2 * time.Minute)

		_, err := repo.Get(ctx, "user-1")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		st, _ := newTestStore(t)
		repo := st.RefreshTokens()

		require.NoError(t, repo.Save(ctx, "user-1", "tok-a", time.Hour))
		require.NoError(t, repo.Delete(ctx, "user-1"))
		require.NoError(t, repo.Delete(ctx, "user-1"))

		_, err := repo.Get(ctx, "user-1")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestRefreshTokenRotate(t *testing.T) {
	ctx := context.Background()

	t.Run("swaps when stored matches", func(t *testing.T) {
		st, _ := newTestStore(t)
		repo := st.RefreshTokens()

		require.NoError(t, repo.Save(ctx, "user-1", "tok-a", time.Hour))
		require.NoError(t, repo.Rotate(ctx, "user-1", "tok-a", "tok-b", time.Hour))

		got, err := repo.Get(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, "tok-b", got)
	})

	t.Run("rejects stale token", func(t *testing.T) {
		st, _ := newTestStore(t)
		repo := st.RefreshTokens()

		require.NoError(t, repo.Save(ctx, "user-1", "tok-a", time.Hour))
		require.NoError(t, repo.Rotate(ctx, "user-1", "tok-a", "tok-b", time.Hour))

		// The first redeem won; replaying the old token must lose.
		err := repo.Rotate(ctx, "user-1", "tok-a", "tok-c", time.Hour)
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := repo.Get(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, "tok-b", got)
	})

	t.Run("rejects missing record", func(t *testing.T) {
		st, _ := newTestStore(t)

		err := st.RefreshTokens().Rotate(ctx, "nobody", "tok-a", "tok-b", time.Hour)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("resets ttl", func(t *testing.T) {
		st, mr := newTestStore(t)
		repo := st.RefreshTokens()

		require.NoError(t, repo.Save(ctx, "user-1", "tok-a", time.Minute))
		require.NoError(t, repo.Rotate(ctx, "user-1", "tok-a", "tok-b", time.Hour))

		mr.FastForward(30 * time.Minute)

		got, err := repo.Get(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, "tok-b", got)
	})
}

func TestSessions(t *testing.T) {
	ctx := context.Background()

	session := domain.Session{
		UserID:      "user-1",
		Username:    "alice",
		Roles:       []string{"user", "admin"},
		AccessToken: "access-token",
		ExpiresAt:   time.Now().UTC().Add(15 * time.Minute).Truncate(time.Second),
	}

	t.Run("save and get", func(t *testing.T) {
		st, _ := newTestStore(t)
		repo := st.Sessions()

		require.NoError(t, repo.Save(ctx, session, 15*time.Minute))

		got, err := repo.Get(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, session, got)
	})

	t.Run("get missing", func(t *testing.T) {
		st, _ := newTestStore(t)

		_, err := st.Sessions().Get(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("expires with access token", func(t *testing.T) {
		st, mr := newTestStore(t)
		repo := st.Sessions()

		require.NoError(t, repo.Save(ctx, session, 15*time.Minute))
		mr.FastForward(16 * time.Minute)

		_, err := repo.Get(ctx, "user-1")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("empty roles survive", func(t *testing.T) {
		st, _ := newTestStore(t)
		repo := st.Sessions()

		bare := session
		bare.Roles = nil
		require.NoError(t, repo.Save(ctx, bare, 15*time.Minute))

		got, err := repo.Get(ctx, "user-1")
		require.NoError(t, err)
		require.Empty(t, got.Roles)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		st, _ := newTestStore(t)
		repo := st.Sessions()

		require.NoError(t, repo.Save(ctx, session, 15*time.Minute))
		require.NoError(t, repo.Delete(ctx, "user-1"))
		require.NoError(t, repo.Delete(ctx, "user-1"))
	})
}

func TestBlacklist(t *testing.T) {
	ctx := context.Background()

	t.Run("add and contains", func(t *testing.T) {
		st, _ := newTestStore(t)
		repo := st.Blacklist()

		require.NoError(t, repo.Add(ctx, "revoked-token", time.Minute))

		found, err := repo.Contains(ctx, "revoked-token")
		require.NoError(t, err)
		require.True(t, found)

		found, err = repo.Contains(ctx, "other-token")
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("entries expire", func(t *testing.T) {
		st, mr := newTestStore(t)
		repo := st.Blacklist()

		require.NoError(t, repo.Add(ctx, "revoked-token", time.Minute))
		mr.FastForward(2 * time.Minute)

		found, err := repo.Contains(ctx, "revoked-token")
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("non-positive ttl is a no-op", func(t *testing.T) {
		st, _ := newTestStore(t)
		repo := st.Blacklist()

		require.NoError(t, repo.Add(ctx, "already-expired", 0))

		found, err := repo.Contains(ctx, "already-expired")
		require.NoError(t, err)
		require.False(t, found)
	})
}

func TestCounters(t *testing.T) {
	ctx := context.Background()

	t.Run("increments", func(t *testing.T) {
		st, _ := newTestStore(t)
		repo := st.Counters()

		for want := int64(1); want <= 3; want++ {
			count, err := repo.Increment(ctx, "1.2.3.4:/auth/login", time.Minute)
			require.NoError(t, err)
			require.Equal(t, want, count)
		}
	})

	t.Run("first increment arms the window", func(t *testing.T) {
		st, mr := newTestStore(t)
		repo := st.Counters()

		_, err := repo.Increment(ctx, "1.2.3.4:/auth/login", time.Minute)
		require.NoError(t, err)
		require.Equal(t, time.Minute, mr.TTL("ratelimit:1.2.3.4:/auth/login"))
	})

	t.Run("window resets the count", func(t *testing.T) {
		st, mr := newTestStore(t)
		repo := st.Counters()

		_, err := repo.Increment(ctx, "1.2.3.4:/auth/login", time.Minute)
		require.NoError(t, err)
		_, err = repo.Increment(ctx, "1.2.3.4:/auth/login", time.Minute)
		require.NoError(t, err)

		mr.FastForward(2 * time.Minute)

		count, err := repo.Increment(ctx, "1.2.3.4:/auth/login", time.Minute)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
	})

	t.Run("keys are independent", func(t *testing.T) {
		st, _ := newTestStore(t)
		repo := st.Counters()

		_, err := repo.Increment(ctx, "1.2.3.4:/auth/login", time.Minute)
		require.NoError(t, err)

		count, err := repo.Increment(ctx, "5.6.7.8:/auth/login", time.Minute)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
	})
}

func TestStorePing(t *testing.T) {
	st, mr := newTestStore(t)

	require.NoError(t, st.Ping(context.Background()))

	mr.Close()
	require.Error(t, st.Ping(context.Background()))
}

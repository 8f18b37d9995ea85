package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mohamed-achich/api-gateway/pkg/httpx"
)

// memCounter is an in-process stand-in for the store-backed counter.
type memCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func (c *memCounter) Increment(_ context.Context, key string, _ time.Duration) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[string]int64)
	}
	c.counts[key]++
	return c.counts[key], nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute}

	t.Run("allows up to the limit then denies", func(t *testing.T) {
		counter := &memCounter{}
		h := httpx.RateLimitByIP(counter, cfg)(okHandler())

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		}

		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Equal(t, "60", rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))

		var body httpx.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, http.StatusTooManyRequests, body.StatusCode)
		require.Equal(t, "/auth/login", body.Path)
	})

	t.Run("clients are counted separately", func(t *testing.T) {
		counter := &memCounter{}
		h := httpx.RateLimitByIP(counter, cfg)(okHandler())

		for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.1:1"} {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			req.RemoteAddr = addr
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
		}

		require.Equal(t, int64(2), counter.counts["10.0.0.1:/auth/login"])
		require.Equal(t, int64(1), counter.counts["10.0.0.2:/auth/login"])
	})

	t.Run("endpoints are counted separately", func(t *testing.T) {
		counter := &memCounter{}
		h := httpx.RateLimitByIP(counter, cfg)(okHandler())

		for _, path := range []string{"/auth/login", "/auth/refresh"} {
			req := httptest.NewRequest(http.MethodPost, path, nil)
			req.RemoteAddr = "10.0.0.1:1"
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
		}

		require.Len(t, counter.counts, 2)
	})

	t.Run("fails open when the store errors", func(t *testing.T) {
		counter := &memCounter{err: errors.New("redis down")}
		h := httpx.RateLimitByIP(counter, cfg)(okHandler())

		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("prefers forwarded-for header", func(t *testing.T) {
		counter := &memCounter{}
		h := httpx.RateLimitByIP(counter, cfg)(okHandler())

		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "127.0.0.1:1"
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, int64(1), counter.counts["203.0.113.7:/auth/login"])
	})

	t.Run("limits by user id when present", func(t *testing.T) {
		counter := &memCounter{}
		h := httpx.RateLimitByUser(counter, cfg)(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req = req.WithContext(context.WithValue(req.Context(), httpx.CtxKeyUserID, "user-1"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, int64(1), counter.counts["user-1:/orders"])
	})
}

func TestParseRateLimitFromEnv(t *testing.T) {
	fallback := httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute}

	t.Run("unset keeps defaults", func(t *testing.T) {
		cfg := httpx.ParseRateLimitFromEnv("TESTUNSET", fallback)
		require.Equal(t, fallback, cfg)
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("RATELIMIT_TESTSET_REQUESTS", "42")
		t.Setenv("RATELIMIT_TESTSET_WINDOW_SEC", "120")

		cfg := httpx.ParseRateLimitFromEnv("TESTSET", fallback)
		require.Equal(t, 42, cfg.RequestsPerWindow)
		require.Equal(t, 2*time.Minute, cfg.Window)
	})

	t.Run("garbage values keep defaults", func(t *testing.T) {
		t.Setenv("RATELIMIT_TESTBAD_REQUESTS", "lots")

		cfg := httpx.ParseRateLimitFromEnv("TESTBAD", fallback)
		require.Equal(t, fallback, cfg)
	})
}

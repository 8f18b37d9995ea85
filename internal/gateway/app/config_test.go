package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "api-gateway", cfg.Issuer)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, "localhost:50051", cfg.UsersAddr)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_ACCESS_TTL", "30m")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "5s")

	cfg := LoadConfig()

	require.Equal(t, "a", cfg.AccessSecret)
	require.Equal(t, 30*time.Minute, cfg.AccessTTL)
	require.Equal(t, "redis:6379", cfg.RedisAddr)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 5*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("JWT_ACCESS_TTL", "soon")

	cfg := LoadConfig()

	require.Equal(t, 8080, cfg.Port)
	require.Zero(t, cfg.AccessTTL)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{AccessSecret: "a", RefreshSecret: "r", ServiceSecret: "s"}
	require.NoError(t, valid.Validate())

	for _, tc := range []struct {
		name string
		cfg  Config
	}{
		{"missing access secret", Config{RefreshSecret: "r", ServiceSecret: "s"}},
		{"missing refresh secret", Config{AccessSecret: "a", ServiceSecret: "s"}},
		{"missing service secret", Config{AccessSecret: "a", RefreshSecret: "r"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.cfg.Validate())
		})
	}
}

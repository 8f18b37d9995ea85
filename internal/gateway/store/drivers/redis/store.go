// Package redis implements the session store on a shared Redis instance.
// Key layout: "refresh:<userID>", "session:<userID>", "blacklist:<token>",
// "ratelimit:<client>:<endpoint>".
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/mohamed-achich/api-gateway/internal/gateway/store"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

type Store struct {
	rdb *redis.Client
}

// NewStore connects to Redis and verifies the connection before returning.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &Store{rdb: rdb}, nil
}

// NewStoreFromClient wraps an existing client. Used by tests running against
// miniredis.
func NewStoreFromClient(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

var _ store.Store = (*Store)(nil)

func (s *Store) RefreshTokens() store.RefreshTokens { return &refreshTokensRepo{rdb: s.rdb} }
func (s *Store) Sessions() store.Sessions           { return &sessionsRepo{rdb: s.rdb} }
func (s *Store) Blacklist() store.Blacklist         { return &blacklistRepo{rdb: s.rdb} }
func (s *Store) Counters() store.Counters           { return &countersRepo{rdb: s.rdb} }

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

func refreshKey(userID string) string { return "refresh:" + userID }
func sessionKey(userID string) string { return "session:" + userID }
func blacklistKey(token string) string { return "blacklist:" + token }
func rateLimitKey(key string) string  { return "ratelimit:" + key }

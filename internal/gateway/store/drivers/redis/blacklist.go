package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type blacklistRepo struct {
	rdb *redis.Client
}

func (r *blacklistRepo) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing left to revoke.
		return nil
	}
	return r.rdb.Set(ctx, blacklistKey(token), "1", ttl).Err()
}

func (r *blacklistRepo) Contains(ctx context.Context, token string) (bool, error) {
	n, err := r.rdb.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

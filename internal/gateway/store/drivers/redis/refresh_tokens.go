package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mohamed-achich/api-gateway/internal/gateway/store"
)

// rotateScript swaps the stored refresh token for a new one only while the
// stored value still equals the presented one. Running it server-side makes
// rotation a single atomic step, so two concurrent redeems of the same token
// produce exactly one winner.
const rotateScript = `
local current = redis.call("GET", KEYS[1])
if not current or current ~= ARGV[1] then
  return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`

var rotateLua = redis.NewScript(rotateScript)

type refreshTokensRepo struct {
	rdb *redis.Client
}

func (r *refreshTokensRepo) Save(ctx context.Context, userID, token string, ttl time.Duration) error {
	return r.rdb.Set(ctx, refreshKey(userID), token, ttl).Err()
}

func (r *refreshTokensRepo) Get(ctx context.Context, userID string) (string, error) {
	token, err := r.rdb.Get(ctx, refreshKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", store.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (r *refreshTokensRepo) Rotate(
	ctx context.Context,
	userID, oldToken, newToken string,
	ttl time.Duration,
) error {
	swapped, err := rotateLua.Run(ctx, r.rdb,
		[]string{refreshKey(userID)},
		oldToken, newToken, ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return err
	}
	if swapped == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *refreshTokensRepo) Delete(ctx context.Context, userID string) error {
	return r.rdb.Del(ctx, refreshKey(userID)).Err()
}

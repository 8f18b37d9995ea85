package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mohamed-achich/api-gateway/internal/gateway/domain"
	"github.com/mohamed-achich/api-gateway/internal/gateway/store"
)

type sessionsRepo struct {
	rdb *redis.Client
}

func (r *sessionsRepo) Save(ctx context.Context, session domain.Session, ttl time.Duration) error {
	roles, err := json.Marshal(session.Roles)
	if err != nil {
		return err
	}

	key := sessionKey(session.UserID)
	fields := map[string]any{
		"userId":      session.UserID,
		"username":    session.Username,
		"roles":       string(roles),
		"accessToken": session.AccessToken,
		"exp":         session.ExpiresAt.Unix(),
	}

	if err := r.rdb.HSet(ctx, key, fields).Err(); err != nil {
		return err
	}
	return r.rdb.PExpire(ctx, key, ttl).Err()
}

func (r *sessionsRepo) Get(ctx context.Context, userID string) (domain.Session, error) {
	fields, err := r.rdb.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return domain.Session{}, err
	}
	if len(fields) == 0 {
		// HGETALL returns an empty map for missing keys, not redis.Nil.
		return domain.Session{}, store.ErrNotFound
	}

	session := domain.Session{
		UserID:      fields["userId"],
		Username:    fields["username"],
		AccessToken: fields["accessToken"],
	}

	if raw := fields["roles"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &session.Roles); err != nil {
			return domain.Session{}, err
		}
	}

	if raw := fields["exp"]; raw != "" {
		exp, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.Session{}, err
		}
		session.ExpiresAt = time.Unix(exp, 0).UTC()
	}

	return session, nil
}

func (r *sessionsRepo) Delete(ctx context.Context, userID string) error {
	return r.rdb.Del(ctx, sessionKey(userID)).Err()
}

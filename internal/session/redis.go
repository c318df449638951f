package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "console:session:"

const (
	fieldAccessToken  = "accessToken"
	fieldRefreshToken = "refreshToken"
	fieldUser         = "user"
)

// Redis persists one session as a hash keyed by console session id. TTL
// bounds how long an abandoned console session lingers.
type Redis struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedis builds a redis store for the session id.
func NewRedis(client *redis.Client, sessionID string, ttl time.Duration) *Redis {
	return &Redis{client: client, key: redisKeyPrefix + sessionID, ttl: ttl}
}

// Load fetches the stored hash; an absent key is an empty snapshot.
func (r *Redis) Load(ctx context.Context) (Snapshot, error) {
	values, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return Snapshot{}, fmt.Errorf("load session hash: %w", err)
	}
	snap := Snapshot{
		AccessToken:  values[fieldAccessToken],
		RefreshToken: values[fieldRefreshToken],
	}
	if user, ok := values[fieldUser]; ok && user != "" {
		snap.UserJSON = []byte(user)
	}
	return snap, nil
}

// Save writes all fields in one pipeline so the hash is replaced as a unit.
func (r *Redis) Save(ctx context.Context, snap Snapshot) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.key)
	pipe.HSet(ctx, r.key,
		fieldAccessToken, snap.AccessToken,
		fieldRefreshToken, snap.RefreshToken,
		fieldUser, string(snap.UserJSON),
	)
	if r.ttl > 0 {
		pipe.Expire(ctx, r.key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session hash: %w", err)
	}
	return nil
}

// Clear deletes the hash; deleting an absent key is fine.
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("clear session hash: %w", err)
	}
	return nil
}

// NewRedisFactory scopes redis stores per session id.
func NewRedisFactory(client *redis.Client, ttl time.Duration) Factory {
	return func(sessionID string) Store {
		return NewRedis(client, sessionID, ttl)
	}
}

// Package session persists authenticated identities in a key-value store so
// that a token outlives the process that issued it.
package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/vinayak-mandal/finflow/internal/user"
)

const keyPrefix = "session:v1:"

// Store holds one identity per session token. Sessions have no expiry: a
// saved identity stays valid until Clear is called.
type Store interface {
	Restore(ctx context.Context, token string) (user.Identity, bool, error)
	Save(ctx context.Context, token string, identity user.Identity) error
	Clear(ctx context.Context, token string) error
}

// RedisStore implements Store on Redis.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisStore builds a Redis-backed session store.
func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

// Restore loads the identity saved under token. A missing key or an
// undecodable record both report absent; corrupt records are dropped.
func (s *RedisStore) Restore(ctx context.Context, token string) (user.Identity, bool, error) {
	raw, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return user.Identity{}, false, nil
	}
	if err != nil {
		return user.Identity{}, false, err
	}

	var identity user.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		s.logger.Warn("dropping corrupt session record", slog.Any("error", err))
		s.client.Del(ctx, keyPrefix+token)
		return user.Identity{}, false, nil
	}
	return identity, true, nil
}

// Save persists the identity under token with no expiry.
func (s *RedisStore) Save(ctx context.Context, token string, identity user.Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+token, payload, 0).Err()
}

// Clear removes the session. Clearing an absent token is not an error.
func (s *RedisStore) Clear(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}

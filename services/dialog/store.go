// File: services/dialog/store.go
package dialog

import (
	"context"
	"encoding/json"
	"time"

	"roomly/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "dialog:sess:"

// SessionStore persists dialog sessions between stateless invocations.
// A session is read once at the start of a turn and written once at the end.
type SessionStore interface {
	Get(ctx context.Context, userID string) (*models.Session, error)
	Set(ctx context.Context, sess *models.Session) error
	Clear(ctx context.Context, userID string) error
}

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

// Get loads the user's session. A missing or expired entry yields a fresh
// idle session rather than an error.
func (s *RedisSessionStore) Get(ctx context.Context, userID string) (*models.Session, error) {
	key := sessionPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return models.NewSession(userID), nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sess *models.Session) error {
	key := sessionPrefix + sess.UserID
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, userID string) error {
	key := sessionPrefix + userID
	return s.client.Del(ctx, key).Err()
}

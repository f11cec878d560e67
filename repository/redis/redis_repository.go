package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/dimasprsty/storefront/cmd/redis"
	"github.com/dimasprsty/storefront/model"
)

// Repository stores authenticated sessions keyed by JWT jti. A session keeps
// the shopper identity together with the store-api bearer token so handlers
// never reach for ambient credential state.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, sess *model.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type sessionStore struct{}

// NewRepository returns a Redis-backed session Repository.
func NewRepository() Repository {
	return &sessionStore{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// SetSession stores a session with TTL.
func (r *sessionStore) SetSession(ctx context.Context, sessionID string, sess *model.Session, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return client.Set(ctx, sessionKey(sessionID), payload, ttl).Err()
}

// GetSession retrieves a session; a missing key yields (nil, nil) so callers
// can translate it into their own unauthorized outcome.
func (r *sessionStore) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	raw, err := client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var sess model.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// DeleteSession removes a session.
func (r *sessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}

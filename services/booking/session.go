// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tallerlink/models"
	"tallerlink/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds in-flight booking sessions. Sessions are ephemeral;
// the store may evict them after a TTL.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession) error
	Load(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Drop(ctx context.Context, sessionID string) error
}

// redisSessionStore keeps sessions as JSON blobs in the session cache DB.
type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (r *redisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	key := utils.BookingSessionPrefix + session.ID
	if err := r.client.Set(ctx, key, data, utils.BookingSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save booking session: %w", err)
	}
	return nil
}

func (r *redisSessionStore) Load(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := r.client.Get(ctx, utils.BookingSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (r *redisSessionStore) Drop(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, utils.BookingSessionPrefix+sessionID).Err()
}

package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freshfold/models"

	"github.com/go-redis/redis/v8"
)

// SessionTTL is how long an idle wizard session survives in the cache.
const SessionTTL = 30 * time.Minute

// SessionStore persists wizard sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, session *models.WizardSession) error
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore is the production SessionStore.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return "wizard:" + sessionID
}

// Save writes the session to the cache, refreshing its TTL.
func (s *RedisSessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache wizard session: %w", err)
	}
	return nil
}

// Get loads a session from the cache.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

// Delete removes a session from the cache.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

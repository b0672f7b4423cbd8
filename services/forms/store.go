package forms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"homemate/models"

	"github.com/go-redis/redis/v8"
)

const FormSessionPrefix = "formSession:"

// Form sessions outlive a page visit but not a lunch break.
const formSessionTTL = 30 * time.Minute

// SessionStore persists in-flight form snapshots between field updates.
type SessionStore interface {
	Save(ctx context.Context, snap *models.FormSnapshot) error
	Get(ctx context.Context, sessionID string) (*models.FormSnapshot, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps form sessions in Redis with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, snap *models.FormSnapshot) error {
	snap.LastUpdatedAt = time.Now()
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal form session: %w", err)
	}
	if err := s.Client.Set(ctx, FormSessionPrefix+snap.SessionID, data, formSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save form session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.FormSnapshot, error) {
	data, err := s.Client.Get(ctx, FormSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("form session not found or expired")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch form session: %w", err)
	}
	var snap models.FormSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal form session: %w", err)
	}
	return &snap, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, FormSessionPrefix+sessionID).Err()
}

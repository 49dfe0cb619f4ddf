// File: services/assistant/context_store.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"tripwise/models"
)

const contextPrefix = "assistant:ctx:"

// RedisContextStore keeps per-user conversation context between turns.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, userID string) (*models.AssistantContext, error) {
	key := contextPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.AssistantContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var aCtx models.AssistantContext
	if err := json.Unmarshal([]byte(data), &aCtx); err != nil {
		return nil, err
	}
	return &aCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, aCtx *models.AssistantContext) error {
	key := contextPrefix + userID
	b, err := json.Marshal(aCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	key := contextPrefix + userID
	return s.client.Del(ctx, key).Err()
}

// File: services/assistant/store.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"habi/models"

	"github.com/go-redis/redis/v8"
)

const conversationPrefix = "chat:conv:"

// ConversationStore holds per-user conversation state for the lifetime of a
// chat session. Conversations are never written to the primary store.
type ConversationStore interface {
	Get(ctx context.Context, userID string) (*models.Conversation, error)
	Set(ctx context.Context, userID string, conv *models.Conversation) error
	Clear(ctx context.Context, userID string) error
}

// RedisConversationStore keeps conversations in Redis with a session TTL.
type RedisConversationStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisConversationStore(client *redis.Client, ttl time.Duration) *RedisConversationStore {
	return &RedisConversationStore{client: client, ttl: ttl}
}

func (s *RedisConversationStore) Get(ctx context.Context, userID string) (*models.Conversation, error) {
	key := conversationPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.Conversation{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	var conv models.Conversation
	if err := json.Unmarshal([]byte(data), &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *RedisConversationStore) Set(ctx context.Context, userID string, conv *models.Conversation) error {
	key := conversationPrefix + userID
	b, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisConversationStore) Clear(ctx context.Context, userID string) error {
	key := conversationPrefix + userID
	return s.client.Del(ctx, key).Err()
}

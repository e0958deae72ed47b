package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"youth-connect/backend/pkg/redis"
)

// RedisStore 基于 Redis 的会话存储，过期由 Redis TTL 负责
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 会话存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.SetSession(ctx, s.ID, payload, ttl)
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := r.client.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.DeleteSession(ctx, id)
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

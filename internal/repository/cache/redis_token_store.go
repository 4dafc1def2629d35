package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) SetAccessToken(ctx context.Context, userId uuid.UUID, token string, ttl time.Duration) error {
	return s.client.SetEx(ctx, accessKey(userId), token, ttl).Err()
}

func (s *RedisTokenStore) SetRefreshToken(ctx context.Context, userId uuid.UUID, token string, ttl time.Duration) error {
	return s.client.SetEx(ctx, refreshKey(userId), token, ttl).Err()
}

func (s *RedisTokenStore) GetAccessToken(ctx context.Context, userId uuid.UUID) (string, error) {
	return s.get(ctx, accessKey(userId))
}

func (s *RedisTokenStore) GetRefreshToken(ctx context.Context, userId uuid.UUID) (string, error) {
	return s.get(ctx, refreshKey(userId))
}

func (s *RedisTokenStore) get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisTokenStore) DeleteTokens(ctx context.Context, userId uuid.UUID) error {
	return s.client.Del(ctx, accessKey(userId), refreshKey(userId)).Err()
}

package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// TokenStore is the in-process fallback used when no Redis URL is
// configured (local dev, tests). Same revocation semantics, no
// cross-process visibility.
type TokenStore struct {
	cache *cache.Cache
}

func NewTokenStore() *TokenStore {
	c := cache.New(15*time.Minute, 10*time.Minute)
	return &TokenStore{
		cache: c,
	}
}

func (s *TokenStore) SetAccessToken(_ context.Context, userId uuid.UUID, token string, ttl time.Duration) error {
	s.cache.Set("access_token:"+userId.String(), token, ttl)
	return nil
}

func (s *TokenStore) SetRefreshToken(_ context.Context, userId uuid.UUID, token string, ttl time.Duration) error {
	s.cache.Set("refresh_token:"+userId.String(), token, ttl)
	return nil
}

func (s *TokenStore) GetAccessToken(_ context.Context, userId uuid.UUID) (string, error) {
	if x, found := s.cache.Get("access_token:" + userId.String()); found {
		return x.(string), nil
	}
	return "", nil
}

func (s *TokenStore) GetRefreshToken(_ context.Context, userId uuid.UUID) (string, error) {
	if x, found := s.cache.Get("refresh_token:" + userId.String()); found {
		return x.(string), nil
	}
	return "", nil
}

func (s *TokenStore) DeleteTokens(_ context.Context, userId uuid.UUID) error {
	s.cache.Delete("access_token:" + userId.String())
	s.cache.Delete("refresh_token:" + userId.String())
	return nil
}

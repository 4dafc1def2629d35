package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenStore mirrors issued JWTs so logout can revoke otherwise
// stateless tokens. Keys are scoped per user: one live access token and
// one live refresh token per user at a time.
type TokenStore interface {
	SetAccessToken(ctx context.Context, userId uuid.UUID, token string, ttl time.Duration) error
	SetRefreshToken(ctx context.Context, userId uuid.UUID, token string, ttl time.Duration) error
	// Get methods return "" when no token is stored (expired or revoked).
	GetAccessToken(ctx context.Context, userId uuid.UUID) (string, error)
	GetRefreshToken(ctx context.Context, userId uuid.UUID) (string, error)
	DeleteTokens(ctx context.Context, userId uuid.UUID) error
}

func accessKey(userId uuid.UUID) string {
	return "access_token:" + userId.String()
}

func refreshKey(userId uuid.UUID) string {
	return "refresh_token:" + userId.String()
}

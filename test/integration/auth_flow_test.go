package integration

import (
	"context"
	"testing"
	"time"

	"shared-notes-be/internal/config"
	"shared-notes-be/internal/dto"
	"shared-notes-be/internal/pkg/apperrors"
	"shared-notes-be/internal/repository/memory"
	"shared-notes-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (service.IAuthService, *memory.TokenStore) {
	t.Helper()

	_, uowFactory := setupDB(t)
	tokens := memory.NewTokenStore()
	authCfg := config.AuthConfig{
		JwtSecret:       "integration-test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 14 * 24 * time.Hour,
	}
	return service.NewAuthService(uowFactory, tokens, authCfg, nil), tokens
}

func TestAuthLifecycle(t *testing.T) {
	authSvc, _ := newAuthService(t)
	ctx := context.Background()

	username := "auth-itest-" + uuid.New().String()[:8]
	password := "password123"

	registered, err := authSvc.Register(ctx, &dto.RegisterRequest{Username: username, Password: password})
	require.NoError(t, err)
	assert.Equal(t, username, registered.Username)

	// Duplicate registration is rejected.
	_, err = authSvc.Register(ctx, &dto.RegisterRequest{Username: username, Password: password})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)

	// Wrong password.
	_, err = authSvc.Login(ctx, &dto.LoginRequest{Username: username, Password: "wrong-password"})
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Status)

	tokens, err := authSvc.Login(ctx, &dto.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "bearer", tokens.TokenType)

	refreshed, err := authSvc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// Logout revokes the cached tokens; the same refresh token now fails
	// even though its signature is still valid.
	require.NoError(t, authSvc.Logout(ctx, registered.Id))

	_, err = authSvc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: tokens.RefreshToken})
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Status)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	authSvc, _ := newAuthService(t)
	ctx := context.Background()

	username := "auth-itest-" + uuid.New().String()[:8]
	_, err := authSvc.Register(ctx, &dto.RegisterRequest{Username: username, Password: "password123"})
	require.NoError(t, err)

	tokens, err := authSvc.Login(ctx, &dto.LoginRequest{Username: username, Password: "password123"})
	require.NoError(t, err)

	// An access token presented as a refresh token must be rejected by
	// the type claim check.
	_, err = authSvc.Refresh(ctx, &dto.RefreshRequest{RefreshToken: tokens.AccessToken})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Status)
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenStoreRoundTrip(t *testing.T) {
	store := NewTokenStore()
	ctx := context.Background()
	userId := uuid.New()

	got, err := store.GetAccessToken(ctx, userId)
	if err != nil {
		t.Fatalf("GetAccessToken: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty token for unknown user, got %q", got)
	}

	if err := store.SetAccessToken(ctx, userId, "access-abc", time.Minute); err != nil {
		t.Fatalf("SetAccessToken: %v", err)
	}
	if err := store.SetRefreshToken(ctx, userId, "refresh-xyz", time.Minute); err != nil {
		t.Fatalf("SetRefreshToken: %v", err)
	}

	access, _ := store.GetAccessToken(ctx, userId)
	refresh, _ := store.GetRefreshToken(ctx, userId)
	if access != "access-abc" || refresh != "refresh-xyz" {
		t.Errorf("round trip mismatch: access=%q refresh=%q", access, refresh)
	}

	// Tokens are per user.
	other, _ := store.GetAccessToken(ctx, uuid.New())
	if other != "" {
		t.Errorf("expected no token for a different user, got %q", other)
	}
}

func TestTokenStoreDeleteRevokesBoth(t *testing.T) {
	store := NewTokenStore()
	ctx := context.Background()
	userId := uuid.New()

	_ = store.SetAccessToken(ctx, userId, "access-abc", time.Minute)
	_ = store.SetRefreshToken(ctx, userId, "refresh-xyz", time.Minute)

	if err := store.DeleteTokens(ctx, userId); err != nil {
		t.Fatalf("DeleteTokens: %v", err)
	}

	access, _ := store.GetAccessToken(ctx, userId)
	refresh, _ := store.GetRefreshToken(ctx, userId)
	if access != "" || refresh != "" {
		t.Errorf("tokens should be gone after delete: access=%q refresh=%q", access, refresh)
	}
}

func TestTokenStoreExpiry(t *testing.T) {
	store := NewTokenStore()
	ctx := context.Background()
	userId := uuid.New()

	_ = store.SetAccessToken(ctx, userId, "short-lived", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	got, _ := store.GetAccessToken(ctx, userId)
	if got != "" {
		t.Errorf("expired token should read as empty, got %q", got)
	}
}

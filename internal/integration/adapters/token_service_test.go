package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// memoryTokenRepository is an in-memory TokenRepository for adapter tests.
type memoryTokenRepository struct {
	tokens      map[string]uuid.UUID
	invalidated map[string]bool
}

func newMemoryTokenRepository() *memoryTokenRepository {
	return &memoryTokenRepository{
		tokens:      make(map[string]uuid.UUID),
		invalidated: make(map[string]bool),
	}
}

func (r *memoryTokenRepository) SaveRefreshToken(_ context.Context, token string, userID uuid.UUID, _ time.Time) error {
	r.tokens[token] = userID
	return nil
}

func (r *memoryTokenRepository) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, ok := r.tokens[token]
	return ok && !r.invalidated[token], nil
}

func (r *memoryTokenRepository) InvalidateRefreshToken(_ context.Context, token string) error {
	r.invalidated[token] = true
	return nil
}

func (r *memoryTokenRepository) InvalidateAllUserRefreshTokens(_ context.Context, userID uuid.UUID) error {
	for token, owner := range r.tokens {
		if owner == userID {
			r.invalidated[token] = true
		}
	}
	return nil
}

func TestTokenService_RememberMeClaim(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService("test-secret", newMemoryTokenRepository())
	userID := uuid.New()

	t.Run("remembered pair carries the flag in its claims", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(ctx, userID, "judy@example.com", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !claims.RememberMe {
			t.Error("expected the refresh token claims to carry remember-me")
		}
		if claims.UserID != userID {
			t.Errorf("claims user = %s, want %s", claims.UserID, userID)
		}
	})

	t.Run("plain pair does not carry the flag", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(ctx, userID, "judy@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.RememberMe {
			t.Error("expected a plain refresh token without remember-me")
		}
	})

	t.Run("remembered refresh token outlives the default lifetime", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(ctx, userID, "judy@example.com", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := svc.ValidateRefreshToken(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if remaining := time.Until(claims.ExpiresAt); remaining <= defaultRefreshTokenDuration {
			t.Errorf("remembered refresh token expires in %s, want more than %s",
				remaining, defaultRefreshTokenDuration)
		}
	})
}

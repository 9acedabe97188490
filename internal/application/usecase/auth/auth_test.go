package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

// fakeUserRepository is an in-memory UserRepository for use case tests.
type fakeUserRepository struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepository) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(context.Background(), email)
	return err == nil, nil
}

// fakePasswordService hashes by prefixing; strength requires 8+ characters.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

// fakeTokenService issues sequential tokens and tracks revocations.
type fakeTokenService struct {
	seq     int
	issued  map[string]adapter.TokenClaims
	revoked map[string]bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		issued:  make(map[string]adapter.TokenClaims),
		revoked: make(map[string]bool),
	}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string, rememberMe bool) (*adapter.TokenPair, error) {
	s.seq++
	claims := adapter.TokenClaims{
		UserID:     userID,
		Email:      email,
		RememberMe: rememberMe,
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	access := fmt.Sprintf("access-%d", s.seq)
	refresh := fmt.Sprintf("refresh-%d", s.seq)
	s.issued[refresh] = claims
	return &adapter.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := s.issued[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return &claims, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.revoked[token] = true
	return nil
}

func (s *fakeTokenService) InvalidateAllUserTokens(_ context.Context, userID uuid.UUID) error {
	for token, claims := range s.issued {
		if claims.UserID == userID {
			s.revoked[token] = true
		}
	}
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, ok := s.issued[token]
	return ok && !s.revoked[token], nil
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	newUseCase := func() (*RegisterUserUseCase, *fakeUserRepository) {
		repo := newFakeUserRepository()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())
		return uc, repo
	}

	t.Run("registers a user and issues tokens", func(t *testing.T) {
		uc, repo := newUseCase()

		out, err := uc.Execute(ctx, RegisterUserInput{
			Email:     "Alice@Example.com",
			FirstName: "Alice",
			LastName:  "Smith",
			Password:  "Str0ngPass!",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Email != "alice@example.com" {
			t.Errorf("email = %q, want lowercased", out.User.Email)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		if len(repo.users) != 1 {
			t.Errorf("stored %d users, want 1", len(repo.users))
		}
	})

	t.Run("rejects a duplicate email regardless of case", func(t *testing.T) {
		uc, _ := newUseCase()

		input := RegisterUserInput{
			Email:     "bob@example.com",
			FirstName: "Bob",
			Password:  "Str0ngPass!",
		}
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("first registration failed: %v", err)
		}

		input.Email = "BOB@example.com"
		_, err := uc.Execute(ctx, input)
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailAlreadyRegistered {
			t.Fatalf("expected duplicate email error, got %v", err)
		}
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:     "carol@example.com",
			FirstName: "Carol",
			Password:  "short",
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeWeakPassword {
			t.Fatalf("expected weak password error, got %v", err)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, RegisterUserInput{Email: "dave@example.com"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeMissingAuthFields {
			t.Fatalf("expected missing fields error, got %v", err)
		}
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		uc, _ := newUseCase()

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:     "not-an-email",
			FirstName: "Eve",
			Password:  "Str0ngPass!",
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeMissingAuthFields {
			t.Fatalf("expected invalid email error, got %v", err)
		}
	})
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()

	setup := func() (*LoginUserUseCase, *fakeUserRepository) {
		repo := newFakeUserRepository()
		hash, _ := fakePasswordService{}.HashPassword("Str0ngPass!")
		user := entity.NewUser("frank@example.com", "Frank", "Hill", "", "", hash)
		repo.users[user.ID] = user
		return NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService()), repo
	}

	t.Run("logs in with valid credentials", func(t *testing.T) {
		uc, _ := setup()

		out, err := uc.Execute(ctx, LoginUserInput{
			Email:    "FRANK@example.com",
			Password: "Str0ngPass!",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		if out.User.Email != "frank@example.com" {
			t.Errorf("user email = %q", out.User.Email)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		uc, _ := setup()

		_, err := uc.Execute(ctx, LoginUserInput{
			Email:    "frank@example.com",
			Password: "WrongPass1!",
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidCredentials {
			t.Fatalf("expected invalid credentials error, got %v", err)
		}
	})

	t.Run("rejects an unknown email with the same error", func(t *testing.T) {
		uc, _ := setup()

		_, err := uc.Execute(ctx, LoginUserInput{
			Email:    "nobody@example.com",
			Password: "Str0ngPass!",
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidCredentials {
			t.Fatalf("expected invalid credentials error, got %v", err)
		}
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rotates the refresh token", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, _ := tokens.GenerateTokenPair(ctx, userID, "grace@example.com", false)
		uc := NewRefreshTokenUseCase(tokens)

		out, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.RefreshToken == pair.RefreshToken {
			t.Error("refresh token was not rotated")
		}
		if !tokens.revoked[pair.RefreshToken] {
			t.Error("old refresh token was not revoked")
		}
	})

	t.Run("keeps the remember-me lifetime across rotation", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, _ := tokens.GenerateTokenPair(ctx, userID, "grace@example.com", true)
		uc := NewRefreshTokenUseCase(tokens)

		out, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rotated, ok := tokens.issued[out.RefreshToken]
		if !ok {
			t.Fatal("rotated refresh token was not issued")
		}
		if !rotated.RememberMe {
			t.Error("rotated token dropped the remember-me flag")
		}
	})

	t.Run("rotation of a plain session stays plain", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, _ := tokens.GenerateTokenPair(ctx, userID, "grace@example.com", false)
		uc := NewRefreshTokenUseCase(tokens)

		out, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tokens.issued[out.RefreshToken].RememberMe {
			t.Error("plain session gained the remember-me flag on rotation")
		}
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeTokenService())

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "bogus"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Fatalf("expected invalid token error, got %v", err)
		}
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, _ := tokens.GenerateTokenPair(ctx, userID, "heidi@example.com", false)
		tokens.revoked[pair.RefreshToken] = true
		uc := NewRefreshTokenUseCase(tokens)

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Fatalf("expected invalid token error, got %v", err)
		}
	})
}

func TestLogoutUser(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the token and always succeeds", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, _ := tokens.GenerateTokenPair(ctx, uuid.New(), "ivan@example.com", false)
		uc := NewLogoutUserUseCase(tokens)

		out, err := uc.Execute(ctx, LogoutUserInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message == "" {
			t.Error("expected a confirmation message")
		}
		if !tokens.revoked[pair.RefreshToken] {
			t.Error("refresh token was not revoked")
		}

		// Unknown tokens still log out cleanly.
		if _, err := uc.Execute(ctx, LogoutUserInput{RefreshToken: "bogus"}); err != nil {
			t.Fatalf("logout with unknown token failed: %v", err)
		}
	})
}

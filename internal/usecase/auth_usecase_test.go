package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	users map[string]repository.User
}

func (m mockUserRepo) FindByEmail(_ context.Context, email string) (repository.User, error) {
	u, ok := m.users[email]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func newAuthFixture(t *testing.T) (*Auth, jwt.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2!"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := mockUserRepo{users: map[string]repository.User{
		"dev@example.com": {ID: uuid.New(), Email: "dev@example.com", PasswordHash: string(hash)},
	}}
	svc := jwt.NewHMACService("a-secret", "r-secret", 15*time.Minute, time.Hour)
	return NewAuthUsecase(repo, svc), svc
}

func TestAuthLogin_Success(t *testing.T) {
	auth, svc := newAuthFixture(t)

	pair, err := auth.Login(context.Background(), "  DEV@example.com ", "hunter2!")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims.Email != "dev@example.com" {
		t.Fatalf("claims email mismatch: %q", claims.Email)
	}
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	auth, _ := newAuthFixture(t)
	if _, err := auth.Login(context.Background(), "dev@example.com", "nope"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthLogin_UnknownUser(t *testing.T) {
	auth, _ := newAuthFixture(t)
	if _, err := auth.Login(context.Background(), "ghost@example.com", "hunter2!"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthRefresh_RoundTrip(t *testing.T) {
	auth, _ := newAuthFixture(t)

	pair, err := auth.Login(context.Background(), "dev@example.com", "hunter2!")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	renewed, err := auth.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if renewed.AccessToken == "" {
		t.Fatalf("expected a fresh access token")
	}

	if _, err := auth.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("access token must not pass as refresh, got %v", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	users  repository.UserRepository
	tokens jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, tokens jwt.Service) *Auth {
	return &Auth{users: users, tokens: tokens}
}

func (a *Auth) Login(ctx context.Context, email, password string) (TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return TokenPair{}, ErrUnauthorized
	}

	u, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TokenPair{}, ErrUnauthorized
		}
		return TokenPair{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return TokenPair{}, ErrUnauthorized
	}
	return a.issue(u.ID, u.Email)
}

func (a *Auth) Refresh(_ context.Context, refreshToken string) (TokenPair, error) {
	claims, err := a.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrUnauthorized
	}
	return a.issue(claims.UserID, claims.Email)
}

func (a *Auth) issue(userID uuid.UUID, email string) (TokenPair, error) {
	access, err := a.tokens.GenerateAccessToken(userID, email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := a.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

var _ AuthUsecase = (*Auth)(nil)

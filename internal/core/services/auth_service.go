package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type AuthService struct {
	repo   domain.UserRepository
	tokens *TokenService
}

func NewAuthService(repo domain.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Timezone string
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	id := uuid.NewString()
	user, err := domain.NewUser(id, input.Email)
	if err != nil {
		return nil, err
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := user.SetTimezone(input.Timezone); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth service: failed to create user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and returns a signed access token.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, *domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("auth service: failed to load user: %w", err)
	}

	if err := user.CheckPassword(input.Password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

const (
	DefaultTokenIssuer = "leverage-journal"

	accountLookupTimeout = 2 * time.Second
)

var ErrInvalidToken = errors.New("invalid access token")

// AccessClaims travel in every journal access token. Timezone is the
// account preference at sign-in, so clients can decide which day is today
// without fetching the profile.
type AccessClaims struct {
	Timezone string `json:"tz,omitempty"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	accounts  domain.UserRepository
	now       func() time.Time
}

func NewTokenService(secretKey string, issuer string, ttl time.Duration, accounts domain.UserRepository) *TokenService {
	if issuer == "" {
		issuer = DefaultTokenIssuer
	}
	return &TokenService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
		accounts:  accounts,
		now:       time.Now,
	}
}

// IssueToken signs an HS256 access token for the journal account.
func (s *TokenService) IssueToken(account *domain.User) (string, error) {
	now := s.now()
	claims := AccessClaims{
		Timezone: account.Timezone,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   account.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("token service: sign access token: %w", err)
	}
	return signed, nil
}

// ParseClaims checks signature, algorithm, issuer and expiry without
// touching storage.
func (s *TokenService) ParseClaims(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}

// ValidateToken returns the account id of a valid token whose account still
// exists.
func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.ParseClaims(tokenString)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, accountLookupTimeout)
	defer cancel()

	if _, err := s.accounts.GetByID(ctx, claims.Subject); err != nil {
		return "", fmt.Errorf("token service: account %s: %w", claims.Subject, err)
	}

	return claims.Subject, nil
}

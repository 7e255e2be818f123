package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/service/auth"
)

// MockJWTService is an auth.JWTService whose behaviour is set per test.
// Without overrides it issues Token and answers every validation with Claims.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	Token  string
	Claims *auth.Claims
}

var _ auth.JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, nil
}

func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.Claims == nil {
		return nil, auth.ErrInvalidToken
	}
	return m.Claims, nil
}

// NewMockJWTServiceForUser accepts any token as an access token for userID.
func NewMockJWTServiceForUser(userID uuid.UUID) *MockJWTService {
	return &MockJWTService{
		Token: "token-" + userID.String(),
		Claims: &auth.Claims{
			UserID:    userID,
			Subject:   userID.String(),
			TokenType: auth.TokenTypeAccess,
		},
	}
}

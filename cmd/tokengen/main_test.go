package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/config"
	"github.com/planwise/planwise-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "tokengen-test-secret-of-32-chars!!"

func TestRun_IssuesVerifiableToken(t *testing.T) {
	t.Setenv("PLANWISE_AUTH_JWT_SECRET", testSecret)
	t.Setenv("PLANWISE_AUTH_TOKEN_LIFETIME_MINUTES", "5")
	userID := uuid.New()

	var out bytes.Buffer
	require.NoError(t, run(&out, userID.String()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "user_id: "+userID.String(), lines[0])
	token := strings.TrimSpace(strings.TrimPrefix(lines[1], "token:"))

	svc, err := auth.NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 5})
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestRun_Errors(t *testing.T) {
	t.Run("short secret", func(t *testing.T) {
		t.Setenv("PLANWISE_AUTH_JWT_SECRET", "short")
		assert.Error(t, run(&bytes.Buffer{}, ""))
	})

	t.Run("bad user id", func(t *testing.T) {
		t.Setenv("PLANWISE_AUTH_JWT_SECRET", testSecret)
		err := run(&bytes.Buffer{}, "not-a-uuid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid user id")
	})
}

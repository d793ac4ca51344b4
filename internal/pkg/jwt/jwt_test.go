package jwt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoops/staff-backend-go/internal/domain/user"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, expiresAt, err := svc.GenerateAccessToken(42, "anna", user.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, "anna", claims["login"])
	assert.EqualValues(t, 42, claims["user_id"])
	assert.NotEmpty(t, decoded.JwtID())
}

func TestGenerateAccessTokenInvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "forever")

	_, _, err := svc.GenerateAccessToken(1, "anna", user.RoleWaiter)
	assert.Error(t, err)
}

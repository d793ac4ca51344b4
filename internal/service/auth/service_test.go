package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/restoops/staff-backend-go/internal/domain/auth"
	"github.com/restoops/staff-backend-go/internal/domain/user"
	"github.com/restoops/staff-backend-go/internal/pkg/jwt"
	"github.com/restoops/staff-backend-go/internal/pkg/validator"
	"github.com/restoops/staff-backend-go/internal/repository/memory"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
)

func newAuthTestService(t *testing.T) (auth.AuthService, user.User) {
	t.Helper()
	store := memory.NewStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := store.AddUser(user.User{Login: "manager", PasswordHash: string(hash), Role: user.RoleManager})

	return NewAuthService(store.Users(), jwt.NewJWTService(testSecret, testAccessExp)), u
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, u := newAuthTestService(t)

	response, err := svc.Login(context.Background(), auth.LoginRequest{Login: "manager", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, u.ID, response.UserID)
	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Greater(t, response.ExpiresAt, int64(0))
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Login: "manager", Password: "wrong"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownLogin(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Login: "ghost", Password: "password123"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newAuthTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

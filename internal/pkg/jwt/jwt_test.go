package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklens/workforce-backend-go/internal/domain/user"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()

	employeeID := "employee-1"
	companyID := "company-1"
	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "user@example.com", &employeeID, &companyID, user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claim := func(key string) interface{} {
		v, ok := token.Get(key)
		require.True(t, ok, key)
		return v
	}
	assert.Equal(t, "user-1", claim("user_id"))
	assert.Equal(t, "user@example.com", claim("email"))
	assert.Equal(t, "employee-1", claim("employee_id"))
	assert.Equal(t, "company-1", claim("company_id"))
	assert.Equal(t, string(user.RoleAdmin), claim("role"))
	assert.Equal(t, "access", claim("type"))
}

func TestGenerateAccessToken_NilOptionalClaims(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("user-1", "user@example.com", nil, nil, user.RoleEmployee)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	employeeID, _ := token.Get("employee_id")
	assert.Nil(t, employeeID)
	companyID, _ := token.Get("company_id")
	assert.Nil(t, companyID)
}

func TestValidateRefreshToken_RoundTrip(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("user-1", "user@example.com", nil, nil, user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestValidateRefreshToken_RejectsGarbage(t *testing.T) {
	svc := newTestService()
	_, err := svc.ValidateRefreshToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateRefreshToken_RejectsRevoked(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))

	_, err = svc.ValidateRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestValidateRefreshToken_RejectsWrongKey(t *testing.T) {
	other := NewJWTService("a-different-secret", "1h", "24h")
	tokenString, _, err := other.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = newTestService().ValidateRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	tokenString, expiresAt, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	cookie := svc.RefreshTokenCookie(tokenString, expiresAt)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, tokenString, cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synczenith/synczenith-backend-go/internal/domain/auth"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("hr@synczenith.com", auth.RoleHR)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	email, _ := decoded.Get("email")
	role, _ := decoded.Get("role")
	typ, _ := decoded.Get("type")
	assert.Equal(t, "hr@synczenith.com", email)
	assert.Equal(t, "hr", role)
	assert.Equal(t, "access", typ)
}

func TestGenerateAccessToken_BadDuration(t *testing.T) {
	svc := NewJWTService("secret", "soon")

	_, _, err := svc.GenerateAccessToken("a@b.co", auth.RoleEmployee)
	assert.Error(t, err)
}

func TestDecode_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("one", "1h").GenerateAccessToken("a@b.co", auth.RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTService("two", "1h").JWTAuth().Decode(token)
	assert.Error(t, err)
}

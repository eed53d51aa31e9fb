package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 15 * time.Minute
	maker := NewJWTMaker(secretKey, tokenTTL)

	tests := []struct {
		name     string
		userUID  string
		username string
		role     string
	}{
		{name: "admin user", userUID: "0b0b7a4e-0000-4000-8000-000000000001", username: "admin", role: "admin"},
		{name: "regular user", userUID: "0b0b7a4e-0000-4000-8000-000000000002", username: "regular_user", role: "user"},
		{name: "user with email username", userUID: "0b0b7a4e-0000-4000-8000-000000000003", username: "user@domain.com", role: "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.userUID, tt.username, tt.role)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.userUID, claims.UserUID())
			assert.Equal(t, tt.username, claims.Username)
			assert.Equal(t, tt.role, claims.Role)
			assert.NotEmpty(t, claims.ID)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_UniqueTokenIDs(t *testing.T) {
	maker := NewJWTMaker("secret", time.Minute)

	first, err := maker.GenerateToken("uid", "user", "user")
	require.NoError(t, err)
	second, err := maker.GenerateToken("uid", "user", "user")
	require.NoError(t, err)

	c1, err := maker.ParseToken(first)
	require.NoError(t, err)
	c2, err := maker.ParseToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewJWTMaker(secretKey, 15*time.Minute)

	validToken, err := maker.GenerateToken("uid-1", "testuser", "user")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "invalid.token.here"},
		{name: "expired token", token: createToken(t, secretKey, -time.Hour, "uid-1")},
		{name: "wrong secret key", token: createToken(t, "wrong_secret_key", time.Minute, "uid-1")},
		{name: "tampered token", token: validToken + "tampered"},
		{name: "token without subject", token: createToken(t, secretKey, time.Minute, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func createToken(t *testing.T, secretKey string, ttl time.Duration, uid string) string {
	t.Helper()
	token, err := NewJWTMaker(secretKey, ttl).GenerateToken(uid, "testuser", "user")
	require.NoError(t, err)
	return token
}

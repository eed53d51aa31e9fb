package middlewarectx_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/work-reminder/internal/http/middlewarectx"
	customjwt "github.com/magabrotheeeer/work-reminder/internal/lib/jwt"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

type AuthMock struct {
	mock.Mock
}

func (m *AuthMock) Authenticate(ctx context.Context, token string) (*customjwt.CustomClaims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*customjwt.CustomClaims)
	return claims, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestJWTMiddleware(t *testing.T) {
	claims := &customjwt.CustomClaims{
		Username:         "testuser",
		Role:             models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}

	tests := []struct {
		name           string
		authHeader     string
		mockClaims     *customjwt.CustomClaims
		mockErr        error
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "invalid Authorization header prefix",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "revoked or invalid token",
			authHeader:     "Bearer token",
			mockErr:        errors.New("token revoked"),
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer token",
			mockClaims:     claims,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthMock)
			if tt.mockClaims != nil || tt.mockErr != nil {
				authMock.On("Authenticate", mock.Anything, "token").Return(tt.mockClaims, tt.mockErr).Once()
			}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				uid, ok := middlewarectx.UserUIDFrom(r.Context())
				assert.True(t, ok)
				assert.Equal(t, "user-1", uid)
				assert.Equal(t, "testuser", r.Context().Value(middlewarectx.User))
				assert.Equal(t, models.RoleUser, r.Context().Value(middlewarectx.Role))
				assert.Equal(t, "token", r.Context().Value(middlewarectx.Token))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			middlewarectx.JWTMiddleware(authMock, newNoopLogger())(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.Equal(t, tt.wantCalled, called)
			authMock.AssertExpectations(t)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name       string
		role       any
		wantStatus int
	}{
		{"admin passes", models.RoleAdmin, http.StatusOK},
		{"user is rejected", models.RoleUser, http.StatusForbidden},
		{"no role", nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.role != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.Role, tt.role))
			}
			w := httptest.NewRecorder()
			middlewarectx.AdminOnly(newNoopLogger())(next).ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

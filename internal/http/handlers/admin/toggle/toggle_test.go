package toggle

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/work-reminder/internal/lib/apperr"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ToggleUser(ctx context.Context, uid string) (bool, error) {
	args := m.Called(ctx, uid)
	return args.Bool(0), args.Error(1)
}

func TestToggleHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		uid            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "пользователь заблокирован",
			uid:  "u-1",
			setupMock: func(m *MockService) {
				m.On("ToggleUser", mock.Anything, "u-1").Return(false, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"is_active":false`,
		},
		{
			name: "администратор защищён",
			uid:  "a-1",
			setupMock: func(m *MockService) {
				m.On("ToggleUser", mock.Anything, "a-1").Return(false, apperr.ErrForbidden).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "forbidden",
		},
		{
			name: "не найден",
			uid:  "missing",
			setupMock: func(m *MockService) {
				m.On("ToggleUser", mock.Anything, "missing").Return(false, apperr.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "not found",
		},
		{
			name:           "пустой uid",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid user uid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			req := httptest.NewRequest(http.MethodPost, "/admin/users/"+tt.uid+"/toggle", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("uid", tt.uid)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

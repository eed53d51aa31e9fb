package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/work-reminder/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Dashboard(ctx context.Context) (*models.AdminDashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminDashboard), args.Error(1)
}

func TestAdminDashboardHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("сводка", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Dashboard", mock.Anything).Return(&models.AdminDashboard{
			TotalUsers:  2,
			ActiveUsers: 1,
			RecentUsers: []models.RecentUser{{Username: "alice", Email: "a@example.com"}},
		}, nil).Once()

		w := httptest.NewRecorder()
		New(logger, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"alice"`)
	})

	t.Run("ошибка сервиса", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Dashboard", mock.Anything).Return(nil, errors.New("db")).Once()

		w := httptest.NewRecorder()
		New(logger, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "could not load dashboard")
	})
}

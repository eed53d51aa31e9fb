package read

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/work-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/work-reminder/internal/lib/apperr"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, userUID string, id int64) (*models.TaskView, error) {
	args := m.Called(ctx, userUID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TaskView), args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	view := models.NewTaskView(models.Task{
		ID:          3,
		Title:       "Pay rent",
		ScheduledAt: time.Date(2030, 2, 1, 18, 0, 0, 0, time.UTC),
		Type:        models.TaskTypeMonthly,
	})

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "задача найдена",
			id:   "3",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "user-1", int64(3)).Return(&view, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"datetime":"2030-02-01 18:00:00"`,
		},
		{
			name:           "некорректный id",
			id:             "x",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid id",
		},
		{
			name: "не найдена",
			id:   "4",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "user-1", int64(4)).Return(nil, apperr.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			req := httptest.NewRequest(http.MethodGet, "/tasks/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middlewarectx.UserUID, "user-1")
			w := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

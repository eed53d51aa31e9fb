package create

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/work-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/work-reminder/internal/lib/apperr"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userUID string, req models.DummyTask) (int64, error) {
	args := m.Called(ctx, userUID, req)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	valid := `{"title":"Standup","task_date":"2030-01-02","task_time":"09:30","priority":"high"}`

	tests := []struct {
		name           string
		body           string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное создание",
			body:    valid,
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "user-1", models.DummyTask{
					Title: "Standup", TaskDate: "2030-01-02", TaskTime: "09:30", Priority: "high",
				}).Return(int64(42), nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"task_id":42`,
		},
		{
			name:           "нет пользователя",
			body:           valid,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "unauthorized",
		},
		{
			name:           "некорректный json",
			body:           "{",
			userUID:        "user-1",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request body",
		},
		{
			name:           "неизвестный приоритет",
			body:           `{"title":"x","task_date":"2030-01-02","task_time":"09:30","priority":"urgent"}`,
			userUID:        "user-1",
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field Priority must be one of",
		},
		{
			name:    "дата в прошлом",
			body:    valid,
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "user-1", mock.Anything).
					Return(int64(0), apperr.Validation("Task date and time cannot be in the past")).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "Task date and time cannot be in the past",
		},
		{
			name:    "ошибка сервиса",
			body:    valid,
			userUID: "user-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "user-1", mock.Anything).
					Return(int64(0), apperr.Store("storage.CreateTask", errors.New("db"))).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "could not create task",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString(tt.body))
			if tt.userUID != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID))
			}
			w := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

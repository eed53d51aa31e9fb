// Package list реализует HTTP-обработчик списка задач пользователя с фильтрами.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/work-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/work-reminder/internal/http/response"
	"github.com/magabrotheeeer/work-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/work-reminder/internal/models"
	"github.com/magabrotheeeer/work-reminder/internal/services/task"
)

// Handler обрабатывает запросы на получение списка задач.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения задач.
type Service interface {
	List(ctx context.Context, userUID string, filter models.TaskFilter) ([]models.TaskView, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список задач
// @Description Возвращает задачи текущего пользователя, упорядоченные по дате и времени.
// @Tags Tasks
// @Produce  json
// @Security BearerAuth
// @Param filter query string false "all | today | upcoming | completed | pending"
// @Param date query string false "Дата в формате YYYY-MM-DD"
// @Success 200 {object} map[string]any "Список задач"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Некорректный фильтр"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /tasks [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := middlewarectx.UserUIDFrom(r.Context())
	if !ok {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	q := r.URL.Query()
	filter, err := task.ParseFilter(q.Get("filter"), q.Get("date"))
	if err != nil {
		log.Warn("invalid filter", sl.Err(err))
		status, resp := response.FromError(err, "invalid filter")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	tasks, err := h.service.List(r.Context(), userUID, filter)
	if err != nil {
		log.Error("failed to list tasks", sl.Err(err))
		status, resp := response.FromError(err, "could not list tasks")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"tasks": tasks,
		"count": len(tasks),
	}))
}

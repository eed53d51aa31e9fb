// Package complete реализует HTTP-обработчик, отмечающий задачу выполненной.
package complete

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/work-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/work-reminder/internal/http/response"
	"github.com/magabrotheeeer/work-reminder/internal/lib/sl"
)

// Handler обрабатывает запрос над одной задачей пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает нужный обработчику метод сервиса задач.
type Service interface {
	Complete(ctx context.Context, userUID string, id int64) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отметить задачу выполненной
// @Tags Tasks
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID задачи"
// @Success 200 {object} map[string]any "Успешно"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Задача не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /tasks/{id}/complete [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.complete"
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

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	if err = h.service.Complete(r.Context(), userUID, id); err != nil {
		log.Error("failed to complete task", sl.Err(err))
		status, resp := response.FromError(err, "could not complete task")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("task completed", slog.Int64("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "Task marked as completed",
	}))
}

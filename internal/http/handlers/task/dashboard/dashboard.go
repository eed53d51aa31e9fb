// Package dashboard реализует HTTP-обработчик сводки задач пользователя.
package dashboard

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
)

// Handler отдаёт счётчики задач.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения счётчиков.
type Service interface {
	Dashboard(ctx context.Context, userUID string) (models.TaskCounts, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сводка задач
// @Description Всего, выполнено, ожидает и ожидает сегодня.
// @Tags Tasks
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} models.TaskCounts "Счётчики задач"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /dashboard [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.dashboard"
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

	counts, err := h.service.Dashboard(r.Context(), userUID)
	if err != nil {
		log.Error("failed to load dashboard", sl.Err(err))
		status, resp := response.FromError(err, "could not load dashboard")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	render.JSON(w, r, response.OKWithData(counts))
}

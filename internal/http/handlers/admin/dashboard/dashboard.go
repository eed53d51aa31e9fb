// Package dashboard реализует HTTP-обработчик сводки панели администратора.
package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/work-reminder/internal/http/response"
	"github.com/magabrotheeeer/work-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

// Handler отдаёт сводку администратору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения сводки.
type Service interface {
	Dashboard(ctx context.Context) (*models.AdminDashboard, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сводка администратора
// @Description Количество пользователей и задач, последние регистрации и задачи.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} models.AdminDashboard "Сводка"
// @Failure 403 {object} response.ErrorResponse "Нет прав администратора"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/dashboard [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.dashboard"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		log.Error("failed to load admin dashboard", sl.Err(err))
		status, resp := response.FromError(err, "could not load dashboard")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	render.JSON(w, r, response.OKWithData(dashboard))
}

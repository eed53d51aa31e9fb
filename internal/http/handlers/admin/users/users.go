// Package users реализует HTTP-обработчик списка пользователей для администратора.
package users

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

// Handler отдаёт список пользователей со статистикой задач.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения пользователей.
type Service interface {
	ListUsers(ctx context.Context) ([]models.UserWithStats, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Пользователи
// @Description Список пользователей с количеством задач, новые первыми.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Пользователи"
// @Failure 403 {object} response.ErrorResponse "Нет прав администратора"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.users"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		status, resp := response.FromError(err, "could not list users")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"users": users,
		"count": len(users),
	}))
}

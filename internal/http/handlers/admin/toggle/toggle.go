// Package toggle реализует HTTP-обработчик блокировки и разблокировки пользователя.
package toggle

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/work-reminder/internal/http/response"
	"github.com/magabrotheeeer/work-reminder/internal/lib/sl"
)

// Handler переключает is_active пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс переключения статуса.
type Service interface {
	ToggleUser(ctx context.Context, uid string) (bool, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Заблокировать или разблокировать пользователя
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Param uid path string true "UID пользователя"
// @Success 200 {object} map[string]any "Новый статус"
// @Failure 403 {object} response.ErrorResponse "Учётная запись администратора"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/users/{uid}/toggle [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.toggle"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid := chi.URLParam(r, "uid")
	if uid == "" {
		log.Error("empty user uid")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user uid"))
		return
	}

	active, err := h.service.ToggleUser(r.Context(), uid)
	if err != nil {
		log.Error("failed to toggle user", sl.UserUID(uid), sl.Err(err))
		status, resp := response.FromError(err, "could not update user")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"user_uid":  uid,
		"is_active": active,
	}))
}

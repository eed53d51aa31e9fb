// Package remove реализует HTTP-обработчик удаления пользователя администратором.
package remove

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

// Handler удаляет пользователя вместе с задачами.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс удаления пользователя.
type Service interface {
	DeleteUser(ctx context.Context, uid string) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить пользователя
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Param uid path string true "UID пользователя"
// @Success 200 {object} map[string]any "Пользователь удалён"
// @Failure 403 {object} response.ErrorResponse "Учётная запись администратора"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/users/{uid} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.remove"
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

	if err := h.service.DeleteUser(r.Context(), uid); err != nil {
		log.Error("failed to delete user", sl.UserUID(uid), sl.Err(err))
		status, resp := response.FromError(err, "could not delete user")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("user deleted", sl.UserUID(uid))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "User deleted successfully",
	}))
}

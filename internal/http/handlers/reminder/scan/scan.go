// Package scan реализует HTTP-обработчик опроса напоминаний.
//
// Клиент опрашивает эндпоинт с интервалом poll_interval_seconds; каждая
// задача попадает в ответ не более одного раза.
package scan

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/work-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/work-reminder/internal/http/response"
	"github.com/magabrotheeeer/work-reminder/internal/lib/month"
	"github.com/magabrotheeeer/work-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

// Handler отдаёт задачи, для которых наступило время напоминания.
type Handler struct {
	log          *slog.Logger
	service      Service
	pollInterval time.Duration
	now          func() time.Time
}

// Service описывает интерфейс сканера напоминаний.
type Service interface {
	Scan(ctx context.Context, userUID string, now time.Time) (models.ScanResult, error)
}

// New создает новый Handler. pollInterval сообщается клиенту в ответе.
func New(log *slog.Logger, service Service, pollInterval time.Duration) *Handler {
	return &Handler{
		log:          log,
		service:      service,
		pollInterval: pollInterval,
		now:          time.Now,
	}
}

// ServeHTTP godoc
// @Summary Проверить напоминания
// @Description Возвращает задачи, время которых наступило за последнюю минуту, и отмечает их как напомненные.
// @Tags Reminders
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Напоминания"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 429 {object} response.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reminders [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reminder.scan"
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

	res, err := h.service.Scan(r.Context(), userUID, h.now())
	if err != nil {
		log.Error("failed to scan reminders", sl.Err(err))
		status, resp := response.FromError(err, "could not check reminders")
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"reminders":             res.Reminders,
		"count":                 len(res.Reminders),
		"timestamp":             res.Timestamp.Format(month.DateTimeLayout),
		"poll_interval_seconds": int(h.pollInterval / time.Second),
	}))
}

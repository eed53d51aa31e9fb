// Package reminder находит задачи, по которым пора напомнить пользователю.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/work-reminder/internal/lib/apperr"
	"github.com/magabrotheeeer/work-reminder/internal/lib/month"
	"github.com/magabrotheeeer/work-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/work-reminder/internal/metrics"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

// DefaultWindow окно, в течение которого задача считается наступившей.
const DefaultWindow = time.Minute

const defaultDescription = "Task reminder"

// Claimer атомарно выбирает и помечает наступившие задачи.
type Claimer interface {
	// ClaimDueReminders возвращает ожидающие задачи со сроком в (from, to]
	// и отмечает, что напоминание по ним отправлено.
	ClaimDueReminders(ctx context.Context, userUID string, from, to time.Time) ([]models.Task, error)
}

// Service сканер напоминаний.
type Service struct {
	store   Claimer
	log     *slog.Logger
	loc     *time.Location
	window  time.Duration
	metrics *metrics.Metrics
}

// NewService создает новый экземпляр Service. Нулевое window заменяется на DefaultWindow.
func NewService(store Claimer, log *slog.Logger, loc *time.Location, window time.Duration, m *metrics.Metrics) *Service {
	if window <= 0 {
		window = DefaultWindow
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		store:   store,
		log:     log,
		loc:     loc,
		window:  window,
		metrics: m,
	}
}

// Scan возвращает задачи пользователя, срок которых наступил в окне до now,
// и помечает их. Повторный вызов с тем же или более поздним now их не вернёт.
func (s *Service) Scan(ctx context.Context, userUID string, now time.Time) (models.ScanResult, error) {
	const op = "reminder.Scan"

	wall := month.Wall(now.In(s.loc))
	tasks, err := s.store.ClaimDueReminders(ctx, userUID, wall.Add(-s.window), wall)
	if err != nil {
		s.log.Error("failed to claim due reminders", slog.String("op", op), sl.UserUID(userUID), sl.Err(err))
		return models.ScanResult{}, apperr.Store(op, err)
	}

	views := make([]models.ReminderView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, View(t))
	}
	if len(views) > 0 {
		s.log.Info("reminders due", slog.String("op", op), sl.UserUID(userUID), slog.Int("count", len(views)))
		if s.metrics != nil {
			s.metrics.RemindersSent.Add(float64(len(views)))
		}
	}
	return models.ScanResult{Reminders: views, Timestamp: wall}, nil
}

// View формирует представление напоминания по задаче.
func View(t models.Task) models.ReminderView {
	desc := defaultDescription
	if t.Description != nil && *t.Description != "" {
		desc = *t.Description
	}
	return models.ReminderView{
		ID:          t.ID,
		Title:       t.Title,
		Description: desc,
		Time:        t.ScheduledAt.Format(month.Clock12Layout),
		Priority:    t.Priority,
		Type:        t.Type,
	}
}

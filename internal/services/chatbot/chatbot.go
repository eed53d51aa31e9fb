// Package chatbot отвечает на вопросы пользователя о его задачах.
//
// Запрос нормализуется и сверяется с упорядоченной таблицей правил;
// срабатывает первое совпавшее правило. Каждый запрос и ответ пишутся
// в журнал, но сбой журнала не влияет на ответ пользователю.
package chatbot

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/magabrotheeeer/work-reminder/internal/lib/apperr"
	"github.com/magabrotheeeer/work-reminder/internal/lib/month"
	"github.com/magabrotheeeer/work-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/work-reminder/internal/metrics"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

// TaskStore определяет методы чтения задач, нужные обработчикам.
type TaskStore interface {
	// FindTasks возвращает задачи пользователя по условиям q.
	FindTasks(ctx context.Context, userUID string, q models.TaskQuery) ([]models.Task, error)
	// CountTasks возвращает счётчики задач пользователя.
	CountTasks(ctx context.Context, userUID string, today time.Time) (models.TaskCounts, error)
}

// Transcript журнал запросов и ответов чат-бота.
type Transcript interface {
	// AppendQuery добавляет запрос и возвращает ID записи.
	AppendQuery(ctx context.Context, userUID, text string) (int64, error)
	// AttachResponse сохраняет ответ в запись id.
	AttachResponse(ctx context.Context, userUID string, id int64, text string) error
	// AttachLatestResponse сохраняет ответ в последнюю запись пользователя без ответа.
	AttachLatestResponse(ctx context.Context, userUID, text string) error
}

// Picker выбирает индекс из [0, n).
type Picker func(n int) int

// Option настраивает Service.
type Option func(*Service)

// WithPicker задаёт выбор случайных ответов.
func WithPicker(p Picker) Option {
	return func(s *Service) { s.pick = p }
}

// WithClock задаёт источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation задаёт часовой пояс, в котором считаются "сегодня" и "завтра".
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// WithMetrics включает счётчики Prometheus.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// Service классификатор запросов чат-бота.
type Service struct {
	tasks      TaskStore
	transcript Transcript
	log        *slog.Logger
	metrics    *metrics.Metrics
	pick       Picker
	now        func() time.Time
	loc        *time.Location
}

// NewService создает новый экземпляр Service.
func NewService(tasks TaskStore, transcript Transcript, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		tasks:      tasks,
		transcript: transcript,
		log:        log,
		pick:       rand.IntN,
		now:        time.Now,
		loc:        time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Classify отвечает на запрос пользователя userUID.
func (s *Service) Classify(ctx context.Context, userUID, raw string) (string, error) {
	const op = "chatbot.Classify"
	log := s.log.With(slog.String("op", op), sl.UserUID(userUID))

	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return "", apperr.Validation("query is required")
	}

	logID, logErr := s.transcript.AppendQuery(ctx, userUID, text)
	if logErr != nil {
		s.logFailure(log, "failed to log chatbot query", logErr)
	}

	r := match(text)
	now := month.Wall(s.now().In(s.loc))
	response, err := r.handle(s, ctx, userUID, now)
	if err != nil {
		log.Error("failed to build response", slog.String("intent", r.name), sl.Err(err))
		return "", apperr.Store(op, err)
	}

	if logErr == nil {
		logErr = s.transcript.AttachResponse(ctx, userUID, logID, response)
	} else {
		logErr = s.transcript.AttachLatestResponse(ctx, userUID, response)
	}
	if logErr != nil {
		s.logFailure(log, "failed to log chatbot response", logErr)
	}

	if s.metrics != nil {
		s.metrics.ChatbotQueries.WithLabelValues(r.name).Inc()
	}
	log.Debug("query answered", slog.String("intent", r.name))
	return response, nil
}

// intentOf возвращает имя правила, которое сработает для запроса.
func (s *Service) intentOf(raw string) string {
	return match(strings.ToLower(strings.TrimSpace(raw))).name
}

func (s *Service) logFailure(log *slog.Logger, msg string, err error) {
	log.Warn(msg, sl.Err(err))
	if s.metrics != nil {
		s.metrics.ChatbotLogFailures.Inc()
	}
}

func (s *Service) random(options []string) string {
	return options[s.pick(len(options))]
}

// Package task содержит бизнес-логику управления задачами пользователя
// и кэширование сводки задач.
package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/work-reminder/internal/cache"
	"github.com/magabrotheeeer/work-reminder/internal/lib/apperr"
	"github.com/magabrotheeeer/work-reminder/internal/lib/month"
	"github.com/magabrotheeeer/work-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

// Repository определяет методы для работы с задачами в хранилище.
type Repository interface {
	// CreateTask добавляет задачу и возвращает её ID.
	CreateTask(ctx context.Context, task models.Task) (int64, error)
	// GetTask возвращает задачу пользователя по ID.
	GetTask(ctx context.Context, userUID string, id int64) (*models.Task, error)
	// UpdateTask перезаписывает поля задачи.
	UpdateTask(ctx context.Context, task models.Task) error
	// CompleteTask отмечает задачу выполненной.
	CompleteTask(ctx context.Context, userUID string, id int64) error
	// DeleteTask удаляет задачу.
	DeleteTask(ctx context.Context, userUID string, id int64) error
	// FindTasks возвращает задачи пользователя по условиям.
	FindTasks(ctx context.Context, userUID string, q models.TaskQuery) ([]models.Task, error)
	// CountTasks считает задачи пользователя.
	CountTasks(ctx context.Context, userUID string, today time.Time) (models.TaskCounts, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значения из кеша по ключам.
	Invalidate(ctx context.Context, keys ...string) error
}

// Service реализует бизнес-логику работы с задачами.
type Service struct {
	repo     Repository
	cache    Cache
	log      *slog.Logger
	loc      *time.Location
	statsTTL time.Duration
	now      func() time.Time
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, cache Cache, log *slog.Logger, loc *time.Location, statsTTL time.Duration) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:     repo,
		cache:    cache,
		log:      log,
		loc:      loc,
		statsTTL: statsTTL,
		now:      time.Now,
	}
}

func (s *Service) wallNow() time.Time {
	return month.Wall(s.now().In(s.loc))
}

// Create проверяет данные и создает задачу. Срок задачи не может быть в прошлом.
func (s *Service) Create(ctx context.Context, userUID string, req models.DummyTask) (int64, error) {
	const op = "task.Create"

	task, err := s.build(req, true)
	if err != nil {
		return 0, err
	}
	task.UserUID = userUID

	id, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return 0, apperr.Store(op, err)
	}
	s.log.Info("task created", slog.String("op", op), sl.UserUID(userUID), slog.Int64("id", id))
	s.invalidate(ctx, userUID)
	return id, nil
}

// Update перезаписывает задачу пользователя.
func (s *Service) Update(ctx context.Context, userUID string, id int64, req models.DummyTask) error {
	const op = "task.Update"

	task, err := s.build(req, false)
	if err != nil {
		return err
	}
	task.ID = id
	task.UserUID = userUID

	if err = s.repo.UpdateTask(ctx, task); err != nil {
		return storeErr(op, err)
	}
	s.invalidate(ctx, userUID)
	return nil
}

// Complete переводит задачу в статус completed.
func (s *Service) Complete(ctx context.Context, userUID string, id int64) error {
	const op = "task.Complete"

	if err := s.repo.CompleteTask(ctx, userUID, id); err != nil {
		return storeErr(op, err)
	}
	s.invalidate(ctx, userUID)
	return nil
}

// Delete удаляет задачу пользователя.
func (s *Service) Delete(ctx context.Context, userUID string, id int64) error {
	const op = "task.Delete"

	if err := s.repo.DeleteTask(ctx, userUID, id); err != nil {
		return storeErr(op, err)
	}
	s.invalidate(ctx, userUID)
	return nil
}

// Get возвращает задачу пользователя.
func (s *Service) Get(ctx context.Context, userUID string, id int64) (*models.TaskView, error) {
	const op = "task.Get"

	task, err := s.repo.GetTask(ctx, userUID, id)
	if err != nil {
		return nil, storeErr(op, err)
	}
	view := models.NewTaskView(*task)
	return &view, nil
}

// List возвращает задачи пользователя, отобранные фильтром.
func (s *Service) List(ctx context.Context, userUID string, filter models.TaskFilter) ([]models.TaskView, error) {
	const op = "task.List"

	today := month.Day(s.wallNow())
	tomorrow := today.AddDate(0, 0, 1)

	var q models.TaskQuery
	switch filter.Kind {
	case models.FilterToday:
		q.From, q.Before = &today, &tomorrow
	case models.FilterUpcoming:
		q.From, q.Status = &today, models.StatusPending
	case models.FilterCompleted:
		q.Status = models.StatusCompleted
	case models.FilterPending:
		q.Status = models.StatusPending
	}
	if filter.Date != nil {
		day := month.Day(*filter.Date)
		next := day.AddDate(0, 0, 1)
		q.From, q.Before = &day, &next
	}

	tasks, err := s.repo.FindTasks(ctx, userUID, q)
	if err != nil {
		return nil, apperr.Store(op, err)
	}
	views := make([]models.TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, models.NewTaskView(t))
	}
	return views, nil
}

// Dashboard возвращает счётчики задач пользователя, используя кэш.
func (s *Service) Dashboard(ctx context.Context, userUID string) (models.TaskCounts, error) {
	const op = "task.Dashboard"
	key := cache.DashboardKey(userUID)

	var counts models.TaskCounts
	found, err := s.cache.Get(ctx, key, &counts)
	if err != nil {
		s.log.Warn("failed to read dashboard from cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return counts, nil
	}

	counts, err = s.repo.CountTasks(ctx, userUID, month.Day(s.wallNow()))
	if err != nil {
		return models.TaskCounts{}, apperr.Store(op, err)
	}
	if err = s.cache.Set(ctx, key, counts, s.statsTTL); err != nil {
		s.log.Warn("failed to cache dashboard", slog.String("key", key), sl.Err(err))
	}
	return counts, nil
}

// ParseFilter разбирает параметры фильтра списка задач.
func ParseFilter(kind, date string) (models.TaskFilter, error) {
	if kind == "" {
		kind = models.FilterAll
	}
	switch kind {
	case models.FilterAll, models.FilterToday, models.FilterUpcoming, models.FilterCompleted, models.FilterPending:
	default:
		return models.TaskFilter{}, apperr.Validation("Invalid filter")
	}
	filter := models.TaskFilter{Kind: kind}
	if date != "" {
		d, err := time.Parse(month.DateLayout, date)
		if err != nil {
			return models.TaskFilter{}, apperr.Validation("Invalid date format, expected YYYY-MM-DD")
		}
		filter.Date = &d
	}
	return filter, nil
}

func (s *Service) build(req models.DummyTask, create bool) (models.Task, error) {
	var errs []string

	title := strings.TrimSpace(req.Title)
	if title == "" {
		errs = append(errs, "Task title is required")
	}
	date := strings.TrimSpace(req.TaskDate)
	if date == "" {
		errs = append(errs, "Task date is required")
	}
	clock := strings.TrimSpace(req.TaskTime)
	if clock == "" {
		errs = append(errs, "Task time is required")
	}
	taskType := req.TaskType
	if taskType == "" {
		taskType = models.TaskTypeDaily
	}
	if taskType != models.TaskTypeDaily && taskType != models.TaskTypeMonthly {
		errs = append(errs, "Invalid task type")
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if priority != models.PriorityLow && priority != models.PriorityMedium && priority != models.PriorityHigh {
		errs = append(errs, "Invalid priority level")
	}

	var scheduled time.Time
	if date != "" && clock != "" {
		var err error
		scheduled, err = month.Combine(date, clock)
		switch {
		case err != nil:
			errs = append(errs, "Invalid task date or time")
		case create && scheduled.Before(s.wallNow()):
			errs = append(errs, "Task date and time cannot be in the past")
		}
	}

	if len(errs) > 0 {
		return models.Task{}, apperr.Validation(strings.Join(errs, ", "))
	}

	task := models.Task{
		Title:       title,
		ScheduledAt: scheduled,
		Type:        taskType,
		Priority:    priority,
		Status:      models.StatusPending,
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		task.Description = &desc
	}
	return task, nil
}

func (s *Service) invalidate(ctx context.Context, userUID string) {
	if err := s.cache.Invalidate(ctx, cache.DashboardKey(userUID), cache.AdminDashboardKey); err != nil {
		s.log.Warn("failed to invalidate dashboard cache", sl.UserUID(userUID), sl.Err(err))
	}
}

func storeErr(op string, err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return apperr.Store(op, err)
}

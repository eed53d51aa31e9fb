// Package admin содержит операции панели администратора: сводку,
// список пользователей, блокировку и удаление учётных записей.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/work-reminder/internal/cache"
	"github.com/magabrotheeeer/work-reminder/internal/lib/apperr"
	"github.com/magabrotheeeer/work-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

// RecentLimit количество последних пользователей и задач в сводке.
const RecentLimit = 5

// Repository определяет методы хранилища, нужные администратору.
type Repository interface {
	GetUserByUID(ctx context.Context, uid string) (*models.User, error)
	ListUsersWithStats(ctx context.Context) ([]models.UserWithStats, error)
	ToggleUserActive(ctx context.Context, uid string) (bool, error)
	DeleteUser(ctx context.Context, uid string) error
	AdminDashboard(ctx context.Context, recent uint64) (*models.AdminDashboard, error)
}

// Cache описывает методы для кэширования сводки.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Service реализует логику панели администратора.
type Service struct {
	repo     Repository
	cache    Cache
	log      *slog.Logger
	statsTTL time.Duration
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, cache Cache, log *slog.Logger, statsTTL time.Duration) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		log:      log,
		statsTTL: statsTTL,
	}
}

// Dashboard возвращает сводку по пользователям и задачам.
func (s *Service) Dashboard(ctx context.Context) (*models.AdminDashboard, error) {
	const op = "admin.Dashboard"

	var dashboard models.AdminDashboard
	found, err := s.cache.Get(ctx, cache.AdminDashboardKey, &dashboard)
	if err != nil {
		s.log.Warn("failed to read admin dashboard from cache", sl.Err(err))
	}
	if found {
		return &dashboard, nil
	}

	res, err := s.repo.AdminDashboard(ctx, RecentLimit)
	if err != nil {
		return nil, apperr.Store(op, err)
	}
	if err = s.cache.Set(ctx, cache.AdminDashboardKey, res, s.statsTTL); err != nil {
		s.log.Warn("failed to cache admin dashboard", sl.Err(err))
	}
	return res, nil
}

// ListUsers возвращает пользователей со статистикой задач.
func (s *Service) ListUsers(ctx context.Context) ([]models.UserWithStats, error) {
	const op = "admin.ListUsers"

	users, err := s.repo.ListUsersWithStats(ctx)
	if err != nil {
		return nil, apperr.Store(op, err)
	}
	return users, nil
}

// ToggleUser блокирует или разблокирует пользователя и возвращает новое состояние.
func (s *Service) ToggleUser(ctx context.Context, uid string) (bool, error) {
	const op = "admin.ToggleUser"

	if err := s.checkTarget(ctx, op, uid); err != nil {
		return false, err
	}
	active, err := s.repo.ToggleUserActive(ctx, uid)
	if err != nil {
		return false, wrap(op, err)
	}
	s.invalidate(ctx)
	s.log.Info("user status toggled", slog.String("op", op), sl.UserUID(uid), slog.Bool("is_active", active))
	return active, nil
}

// DeleteUser удаляет пользователя вместе с задачами.
func (s *Service) DeleteUser(ctx context.Context, uid string) error {
	const op = "admin.DeleteUser"

	if err := s.checkTarget(ctx, op, uid); err != nil {
		return err
	}
	if err := s.repo.DeleteUser(ctx, uid); err != nil {
		return wrap(op, err)
	}
	s.invalidate(ctx)
	s.log.Info("user deleted", slog.String("op", op), sl.UserUID(uid))
	return nil
}

// checkTarget не даёт трогать учётные записи администраторов.
func (s *Service) checkTarget(ctx context.Context, op, uid string) error {
	user, err := s.repo.GetUserByUID(ctx, uid)
	if err != nil {
		return wrap(op, err)
	}
	if user.IsAdmin() {
		return fmt.Errorf("%s: %w", op, apperr.ErrForbidden)
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.AdminDashboardKey); err != nil {
		s.log.Warn("failed to invalidate admin dashboard cache", sl.Err(err))
	}
}

func wrap(op string, err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return apperr.Store(op, err)
}

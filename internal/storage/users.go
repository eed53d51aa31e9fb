package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/magabrotheeeer/work-reminder/internal/lib/apperr"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

var userColumns = []string{
	"uid", "username", "email", "password_hash", "full_name", "role", "is_active", "created_at",
}

// CreateUser регистрирует пользователя и возвращает его uid.
// Занятые username или email дают apperr.ErrConflict.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}
	query := `INSERT INTO users (username, email, password_hash, full_name, role)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid`
	var uid string
	err := s.DB.QueryRowxContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.FullName, role).Scan(&uid)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, apperr.ErrConflict)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// GetActiveUserByLogin ищет активного пользователя по имени или email.
func (s *Storage) GetActiveUserByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.GetActiveUserByLogin"

	query, args, err := s.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Or{squirrel.Eq{"username": login}, squirrel.Eq{"email": login}}).
		Where(squirrel.Eq{"is_active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.getUser(ctx, op, query, args...)
}

// GetUserByUID возвращает пользователя по uid.
func (s *Storage) GetUserByUID(ctx context.Context, uid string) (*models.User, error) {
	const op = "storage.GetUserByUID"

	query, args, err := s.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"uid": uid}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.getUser(ctx, op, query, args...)
}

func (s *Storage) getUser(ctx context.Context, op, query string, args ...any) (*models.User, error) {
	var user models.User
	if err := s.DB.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// ListUsersWithStats возвращает пользователей с количеством задач, новые первыми.
func (s *Storage) ListUsersWithStats(ctx context.Context) ([]models.UserWithStats, error) {
	const op = "storage.ListUsersWithStats"

	query, args, err := s.sb.Select(
		"u.uid", "u.username", "u.email", "u.password_hash", "u.full_name", "u.role",
		"u.is_active", "u.created_at",
		"COUNT(t.id) AS task_count",
		"COUNT(t.id) FILTER (WHERE t.status = 'completed') AS completed_tasks",
	).
		From("users u").
		LeftJoin("tasks t ON t.user_uid = u.uid").
		GroupBy("u.uid").
		OrderBy("u.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	users := make([]models.UserWithStats, 0)
	if err = s.DB.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// ToggleUserActive инвертирует is_active обычного пользователя и возвращает новое значение.
// Учётные записи администраторов не затрагиваются и дают apperr.ErrNotFound.
func (s *Storage) ToggleUserActive(ctx context.Context, uid string) (bool, error) {
	const op = "storage.ToggleUserActive"

	query := `UPDATE users SET is_active = NOT is_active
			  WHERE uid = $1 AND role = 'user'
			  RETURNING is_active`
	var active bool
	if err := s.DB.QueryRowxContext(ctx, query, uid).Scan(&active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return active, nil
}

// DeleteUser удаляет обычного пользователя вместе с его задачами.
func (s *Storage) DeleteUser(ctx context.Context, uid string) error {
	const op = "storage.DeleteUser"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE uid = $1 AND role = 'user'`, uid)
	return affectedOne(op, res, err)
}

// AdminDashboard собирает сводку для панели администратора.
func (s *Storage) AdminDashboard(ctx context.Context, recent uint64) (*models.AdminDashboard, error) {
	const op = "storage.AdminDashboard"

	var totals struct {
		TotalUsers     int `db:"total_users"`
		ActiveUsers    int `db:"active_users"`
		TotalTasks     int `db:"total_tasks"`
		CompletedTasks int `db:"completed_tasks"`
	}
	query := `SELECT
				(SELECT COUNT(*) FROM users WHERE role = 'user') AS total_users,
				(SELECT COUNT(*) FROM users WHERE role = 'user' AND is_active) AS active_users,
				(SELECT COUNT(*) FROM tasks) AS total_tasks,
				(SELECT COUNT(*) FROM tasks WHERE status = 'completed') AS completed_tasks`
	if err := s.DB.GetContext(ctx, &totals, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	usersQuery, args, err := s.sb.Select("username", "email", "created_at").
		From("users").
		Where(squirrel.Eq{"role": models.RoleUser}).
		OrderBy("created_at DESC").
		Limit(recent).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	users := make([]models.RecentUser, 0)
	if err = s.DB.SelectContext(ctx, &users, usersQuery, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tasksQuery, args, err := s.sb.Select("t.title", "(t.task_date + t.task_time) AS scheduled_at", "u.username").
		From("tasks t").
		Join("users u ON u.uid = t.user_uid").
		OrderBy("t.created_at DESC").
		Limit(recent).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	tasks := make([]models.RecentTask, 0)
	if err = s.DB.SelectContext(ctx, &tasks, tasksQuery, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.AdminDashboard{
		TotalUsers:     totals.TotalUsers,
		ActiveUsers:    totals.ActiveUsers,
		TotalTasks:     totals.TotalTasks,
		CompletedTasks: totals.CompletedTasks,
		RecentUsers:    users,
		RecentTasks:    tasks,
	}, nil
}

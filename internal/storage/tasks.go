package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/magabrotheeeer/work-reminder/internal/lib/apperr"
	"github.com/magabrotheeeer/work-reminder/internal/lib/month"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

// taskColumns колонки задачи; дата и время склеиваются в scheduled_at.
var taskColumns = []string{
	"id", "user_uid", "title", "description",
	"(task_date + task_time) AS scheduled_at",
	"task_type", "priority", "status", "reminder_sent", "created_at", "updated_at",
}

// CreateTask вставляет новую задачу и возвращает её ID.
func (s *Storage) CreateTask(ctx context.Context, task models.Task) (int64, error) {
	const op = "storage.CreateTask"

	query := `INSERT INTO tasks (user_uid, title, description, task_date, task_time, task_type, priority)
			  VALUES ($1, $2, $3, $4::date, $5::time, $6, $7)
			  RETURNING id`
	var id int64
	err := s.DB.QueryRowxContext(ctx, query,
		task.UserUID, task.Title, task.Description, task.Date(), task.Clock(),
		task.Type, task.Priority).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// GetTask возвращает задачу пользователя по ID.
func (s *Storage) GetTask(ctx context.Context, userUID string, id int64) (*models.Task, error) {
	const op = "storage.GetTask"

	query, args, err := s.sb.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"id": id, "user_uid": userUID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var task models.Task
	if err = s.DB.GetContext(ctx, &task, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &task, nil
}

// UpdateTask перезаписывает редактируемые поля задачи.
func (s *Storage) UpdateTask(ctx context.Context, task models.Task) error {
	const op = "storage.UpdateTask"

	query := `UPDATE tasks
			  SET title = $1, description = $2, task_date = $3::date, task_time = $4::time,
			      task_type = $5, priority = $6, updated_at = NOW()
			  WHERE id = $7 AND user_uid = $8`
	res, err := s.DB.ExecContext(ctx, query,
		task.Title, task.Description, task.Date(), task.Clock(),
		task.Type, task.Priority, task.ID, task.UserUID)
	return affectedOne(op, res, err)
}

// CompleteTask переводит задачу в статус completed.
func (s *Storage) CompleteTask(ctx context.Context, userUID string, id int64) error {
	const op = "storage.CompleteTask"

	query := `UPDATE tasks SET status = 'completed', updated_at = NOW()
			  WHERE id = $1 AND user_uid = $2`
	res, err := s.DB.ExecContext(ctx, query, id, userUID)
	return affectedOne(op, res, err)
}

// DeleteTask удаляет задачу пользователя.
func (s *Storage) DeleteTask(ctx context.Context, userUID string, id int64) error {
	const op = "storage.DeleteTask"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_uid = $2`, id, userUID)
	return affectedOne(op, res, err)
}

// FindTasks возвращает задачи пользователя, удовлетворяющие q.
// По умолчанию задачи упорядочены по дате, затем по времени.
func (s *Storage) FindTasks(ctx context.Context, userUID string, q models.TaskQuery) ([]models.Task, error) {
	const op = "storage.FindTasks"

	builder := s.sb.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"user_uid": userUID})
	if q.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": q.Status})
	}
	if q.Priority != "" {
		builder = builder.Where(squirrel.Eq{"priority": q.Priority})
	}
	if q.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"task_date": q.From.Format(month.DateLayout)})
	}
	if q.Before != nil {
		builder = builder.Where(squirrel.Lt{"task_date": q.Before.Format(month.DateLayout)})
	}
	if q.RecentlyUpdated {
		builder = builder.OrderBy("updated_at DESC", "id DESC")
	} else {
		builder = builder.OrderBy("task_date ASC", "task_time ASC", "id ASC")
	}
	if q.Limit > 0 {
		builder = builder.Limit(q.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	tasks := make([]models.Task, 0)
	if err = s.DB.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tasks, nil
}

// CountTasks считает задачи пользователя по статусам и ожидающие задачи на день today.
func (s *Storage) CountTasks(ctx context.Context, userUID string, today time.Time) (models.TaskCounts, error) {
	const op = "storage.CountTasks"

	query := `SELECT
				COUNT(*) AS total,
				COUNT(*) FILTER (WHERE status = 'completed') AS completed,
				COUNT(*) FILTER (WHERE status = 'pending') AS pending,
				COUNT(*) FILTER (WHERE status = 'pending' AND task_date = $2::date) AS today
			  FROM tasks WHERE user_uid = $1`
	var counts models.TaskCounts
	if err := s.DB.GetContext(ctx, &counts, query, userUID, today.Format(month.DateLayout)); err != nil {
		return models.TaskCounts{}, fmt.Errorf("%s: %w", op, err)
	}
	return counts, nil
}

// ClaimDueReminders выбирает ожидающие задачи пользователя, срок которых попал
// в полуинтервал (from, to], и в той же транзакции отмечает их reminder_sent.
// Строки, заблокированные параллельным вызовом, пропускаются, поэтому каждая
// задача возвращается не более одного раза.
func (s *Storage) ClaimDueReminders(ctx context.Context, userUID string, from, to time.Time) ([]models.Task, error) {
	const op = "storage.ClaimDueReminders"

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `WITH claimed AS (
				UPDATE tasks SET reminder_sent = TRUE
				WHERE id IN (
					SELECT id FROM tasks
					WHERE user_uid = $1
					  AND status = 'pending'
					  AND reminder_sent = FALSE
					  AND (task_date + task_time) > $2::timestamp
					  AND (task_date + task_time) <= $3::timestamp
					FOR UPDATE SKIP LOCKED
				) AND reminder_sent = FALSE
				RETURNING id, user_uid, title, description, task_date, task_time,
				          task_type, priority, status, reminder_sent, created_at, updated_at
			  )
			  SELECT id, user_uid, title, description, (task_date + task_time) AS scheduled_at,
			         task_type, priority, status, reminder_sent, created_at, updated_at
			  FROM claimed
			  ORDER BY task_date ASC, task_time ASC, id ASC`

	tasks := make([]models.Task, 0)
	if err = tx.SelectContext(ctx, &tasks, query, userUID,
		from.Format(month.DateTimeLayout), to.Format(month.DateTimeLayout)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tasks, nil
}

func affectedOne(op string, res sql.Result, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	return nil
}

package models

import (
	"time"

	"github.com/magabrotheeeer/work-reminder/internal/lib/month"
)

// Допустимые значения полей задачи.
const (
	TaskTypeDaily   = "daily"
	TaskTypeMonthly = "monthly"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task задача пользователя.
//
// ScheduledAt: настенное время (см. month.Wall): дата и время задачи
// без часового пояса, собранные из колонок task_date и task_time.
type Task struct {
	ID           int64     `db:"id" json:"id"`
	UserUID      string    `db:"user_uid" json:"user_uid"`
	Title        string    `db:"title" json:"title"`
	Description  *string   `db:"description" json:"description"`
	ScheduledAt  time.Time `db:"scheduled_at" json:"-"`
	Type         string    `db:"task_type" json:"task_type"`
	Priority     string    `db:"priority" json:"priority"`
	Status       string    `db:"status" json:"status"`
	ReminderSent bool      `db:"reminder_sent" json:"reminder_sent"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Date возвращает дату задачи в формате YYYY-MM-DD.
func (t *Task) Date() string {
	return t.ScheduledAt.Format(month.DateLayout)
}

// Clock возвращает время задачи в формате HH:MM:SS.
func (t *Task) Clock() string {
	return t.ScheduledAt.Format(month.ClockLayout)
}

// IsCompleted сообщает, выполнена ли задача.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// TaskView представление задачи для списка в API.
type TaskView struct {
	Task
	TaskDate      string `json:"task_date"`
	TaskTime      string `json:"task_time"`
	FormattedDate string `json:"formatted_date"`
	FormattedTime string `json:"formatted_time"`
	DateTime      string `json:"datetime"`
}

// NewTaskView формирует представление задачи с отформатированными датой и временем.
func NewTaskView(t Task) TaskView {
	return TaskView{
		Task:          t,
		TaskDate:      t.Date(),
		TaskTime:      t.Clock(),
		FormattedDate: t.ScheduledAt.Format(month.LongDateLayout),
		FormattedTime: t.ScheduledAt.Format(month.Clock12Layout),
		DateTime:      t.ScheduledAt.Format(month.DateTimeLayout),
	}
}

// DummyTask используется для приёма данных задачи из JSON-запроса.
// Дата и время приходят строками и разбираются в сервисе.
type DummyTask struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	TaskDate    string `json:"task_date" validate:"required"`
	TaskTime    string `json:"task_time" validate:"required"`
	TaskType    string `json:"task_type" validate:"omitempty,oneof=daily monthly"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// TaskFilter фильтр списка задач.
type TaskFilter struct {
	Kind string
	Date *time.Time
}

// Допустимые значения TaskFilter.Kind.
const (
	FilterAll       = "all"
	FilterToday     = "today"
	FilterUpcoming  = "upcoming"
	FilterCompleted = "completed"
	FilterPending   = "pending"
)

// TaskCounts агрегированные счётчики задач пользователя.
type TaskCounts struct {
	Total     int `db:"total" json:"total"`
	Completed int `db:"completed" json:"completed"`
	Pending   int `db:"pending" json:"pending"`
	Today     int `db:"today" json:"today"`
}

// TaskQuery условия выборки задач одного пользователя.
// Пустые поля не участвуют в фильтрации.
type TaskQuery struct {
	Status   string
	Priority string
	// From и Before ограничивают task_date полуинтервалом [From, Before).
	From   *time.Time
	Before *time.Time
	// RecentlyUpdated сортирует по updated_at по убыванию вместо даты и времени задачи.
	RecentlyUpdated bool
	Limit           uint64
}

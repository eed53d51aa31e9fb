// Package models содержит доменные структуры пользователей, задач и журнала чат-бота,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

const (
	// RoleUser обычный пользователь.
	RoleUser = "user"
	// RoleAdmin администратор; такие учётные записи нельзя деактивировать или удалить.
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	UUID         string    `db:"uid" json:"uid"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         string    `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// IsAdmin сообщает, является ли пользователь администратором.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserWithStats пользователь со счётчиками задач для панели администратора.
type UserWithStats struct {
	User
	TaskCount      int `db:"task_count" json:"task_count"`
	CompletedTasks int `db:"completed_tasks" json:"completed_tasks"`
}

// RegisterRequest данные формы регистрации.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FullName        string `json:"full_name" validate:"required,max=100"`
}

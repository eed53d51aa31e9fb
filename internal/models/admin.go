package models

import "time"

// AdminDashboard сводка для панели администратора.
type AdminDashboard struct {
	TotalUsers     int          `json:"total_users"`
	ActiveUsers    int          `json:"active_users"`
	TotalTasks     int          `json:"total_tasks"`
	CompletedTasks int          `json:"completed_tasks"`
	RecentUsers    []RecentUser `json:"recent_users"`
	RecentTasks    []RecentTask `json:"recent_tasks"`
}

// RecentUser недавно зарегистрированный пользователь.
type RecentUser struct {
	Username  string    `db:"username" json:"username"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// RecentTask недавно созданная задача с именем владельца.
type RecentTask struct {
	Title       string    `db:"title" json:"title"`
	ScheduledAt time.Time `db:"scheduled_at" json:"scheduled_at"`
	Username    string    `db:"username" json:"username"`
}

package models

import "time"

// ReminderView задача, по которой пора отправить напоминание.
type ReminderView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Priority    string `json:"priority"`
	Type        string `json:"type"`
}

// ScanResult результат проверки напоминаний.
type ScanResult struct {
	Reminders []ReminderView `json:"reminders"`
	Timestamp time.Time      `json:"-"`
}

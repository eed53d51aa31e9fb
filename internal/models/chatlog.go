package models

import "time"

// ChatLog запись журнала чат-бота: запрос пользователя и ответ бота.
type ChatLog struct {
	ID          int64     `db:"id" json:"id"`
	UserUID     string    `db:"user_uid" json:"user_uid"`
	UserQuery   string    `db:"user_query" json:"user_query"`
	BotResponse *string   `db:"bot_response" json:"bot_response"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ChatRequest тело запроса к чат-боту.
type ChatRequest struct {
	Query string `json:"query" validate:"required,max=1000"`
}

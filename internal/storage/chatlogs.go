package storage

import (
	"context"
	"fmt"
)

// AppendQuery записывает запрос пользователя в журнал и возвращает ID строки.
func (s *Storage) AppendQuery(ctx context.Context, userUID, text string) (int64, error) {
	const op = "storage.AppendQuery"

	var id int64
	err := s.DB.QueryRowxContext(ctx,
		`INSERT INTO chatbot_logs (user_uid, user_query) VALUES ($1, $2) RETURNING id`,
		userUID, text).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// AttachResponse сохраняет ответ бота в строку журнала id.
func (s *Storage) AttachResponse(ctx context.Context, userUID string, id int64, text string) error {
	const op = "storage.AttachResponse"

	res, err := s.DB.ExecContext(ctx,
		`UPDATE chatbot_logs SET bot_response = $1 WHERE id = $2 AND user_uid = $3`,
		text, id, userUID)
	return affectedOne(op, res, err)
}

// AttachLatestResponse сохраняет ответ бота в последнюю строку журнала пользователя без ответа.
func (s *Storage) AttachLatestResponse(ctx context.Context, userUID, text string) error {
	const op = "storage.AttachLatestResponse"

	query := `UPDATE chatbot_logs SET bot_response = $1
			  WHERE id = (
				SELECT id FROM chatbot_logs
				WHERE user_uid = $2 AND bot_response IS NULL
				ORDER BY id DESC
				LIMIT 1
			  )`
	res, err := s.DB.ExecContext(ctx, query, text, userUID)
	return affectedOne(op, res, err)
}

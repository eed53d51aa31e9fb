// Package apperr описывает типы ошибок, которые сервисы возвращают HTTP-слою.
//
// ValidationError: некорректный ввод, повторять запрос бессмысленно.
// StoreError: сбой хранилища, оборачивает исходную ошибку.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound запись не найдена или принадлежит другому пользователю.
	ErrNotFound = errors.New("not found")
	// ErrForbidden операция запрещена (например, над учётной записью администратора).
	ErrForbidden = errors.New("forbidden")
	// ErrConflict нарушение уникальности.
	ErrConflict = errors.New("already exists")
	// ErrUnauthorized неверные учётные данные или неактивный пользователь.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError ошибка валидации входных данных.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validation создаёт ValidationError с сообщением для клиента.
func Validation(msg string) error {
	return &ValidationError{Msg: msg}
}

// StoreError ошибка хранилища данных.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store оборачивает ошибку хранилища. Для nil возвращает nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// IsValidation сообщает, является ли err ошибкой валидации.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStore сообщает, является ли err ошибкой хранилища.
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

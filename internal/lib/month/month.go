// Package month содержит календарные помощники для дат задач.
//
// Дата и время задачи хранятся без часового пояса, поэтому все сравнения
// выполняются над "настенным" временем: значение time.Time в UTC, поля
// которого совпадают с локальными датой и временем пользователя.
package month

import "time"

const (
	// DateLayout формат даты задачи.
	DateLayout = "2006-01-02"
	// ClockLayout формат времени задачи.
	ClockLayout = "15:04:05"
	// DateTimeLayout сортируемое представление даты и времени.
	DateTimeLayout = DateLayout + " " + ClockLayout
	// Clock12Layout 12-часовой формат для ответов пользователю.
	Clock12Layout = "03:04 PM"
	// ShortDateLayout короткая дата, например "Jan 02".
	ShortDateLayout = "Jan 02"
	// LongDateLayout дата для списка задач, например "Jan 02, 2006".
	LongDateLayout = "Jan 02, 2006"
)

// Wall возвращает настенное время t: те же поля даты и времени, но в UTC.
func Wall(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// Day отбрасывает время суток.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Bounds возвращает начало месяца t и начало следующего месяца.
func Bounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// Combine склеивает дату и время суток в настенное время.
func Combine(date, clock string) (time.Time, error) {
	if len(clock) == len("15:04") {
		clock += ":00"
	}
	return time.ParseInLocation(DateTimeLayout, date+" "+clock, time.UTC)
}

package chatbot

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/magabrotheeeer/work-reminder/internal/lib/month"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

func (s *Service) greeting(context.Context, string, time.Time) (string, error) {
	return s.random(greetings), nil
}

func (s *Service) fallback(context.Context, string, time.Time) (string, error) {
	return s.random(defaultResponses), nil
}

func (s *Service) help(context.Context, string, time.Time) (string, error) {
	return helpMessage, nil
}

func (s *Service) reminder(context.Context, string, time.Time) (string, error) {
	return reminderMessage, nil
}

func (s *Service) today(ctx context.Context, userUID string, now time.Time) (string, error) {
	tasks, err := s.pendingOn(ctx, userUID, month.Day(now))
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return noTasksToday, nil
	}
	return dayList(fmt.Sprintf("You have %d task(s) today:\n", len(tasks)), tasks), nil
}

func (s *Service) tomorrow(ctx context.Context, userUID string, now time.Time) (string, error) {
	tasks, err := s.pendingOn(ctx, userUID, month.Day(now).AddDate(0, 0, 1))
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return noTasksTomorrow, nil
	}
	return dayList(fmt.Sprintf("You have %d task(s) for tomorrow:\n", len(tasks)), tasks), nil
}

func (s *Service) pendingOn(ctx context.Context, userUID string, day time.Time) ([]models.Task, error) {
	next := day.AddDate(0, 0, 1)
	return s.tasks.FindTasks(ctx, userUID, models.TaskQuery{
		Status: models.StatusPending,
		From:   &day,
		Before: &next,
	})
}

func (s *Service) monthly(ctx context.Context, userUID string, now time.Time) (string, error) {
	start, end := month.Bounds(now)
	tasks, err := s.tasks.FindTasks(ctx, userUID, models.TaskQuery{From: &start, Before: &end})
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return noTasksThisMonth, nil
	}

	var upcoming []models.Task
	completed := 0
	for _, t := range tasks {
		switch {
		case t.IsCompleted():
			completed++
		case !t.ScheduledAt.Before(now):
			upcoming = append(upcoming, t)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This month you have %d total tasks (%d pending, %d completed).\n\n",
		len(tasks), len(upcoming), completed)
	if len(upcoming) > 0 {
		b.WriteString("Upcoming tasks:\n")
		for _, t := range upcoming[:min(len(upcoming), monthlyPreview)] {
			writeDated(&b, t)
		}
		if len(upcoming) > monthlyPreview {
			fmt.Fprintf(&b, "• ... and %d more tasks\n", len(upcoming)-monthlyPreview)
		}
	}
	return b.String(), nil
}

func (s *Service) upcoming(ctx context.Context, userUID string, now time.Time) (string, error) {
	today := month.Day(now)
	tasks, err := s.tasks.FindTasks(ctx, userUID, models.TaskQuery{
		Status: models.StatusPending,
		From:   &today,
		Limit:  upcomingLimit,
	})
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return noUpcomingTasks, nil
	}
	var b strings.Builder
	b.WriteString("Here are your upcoming tasks:\n")
	for _, t := range tasks {
		writeDated(&b, t)
	}
	return b.String(), nil
}

func (s *Service) completed(ctx context.Context, userUID string, now time.Time) (string, error) {
	counts, err := s.tasks.CountTasks(ctx, userUID, month.Day(now))
	if err != nil {
		return "", err
	}
	if counts.Completed == 0 {
		return noCompletedTasks, nil
	}
	recent, err := s.tasks.FindTasks(ctx, userUID, models.TaskQuery{
		Status:          models.StatusCompleted,
		RecentlyUpdated: true,
		Limit:           recentCompleted,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Great job! You've completed %d task(s) so far.\n\n", counts.Completed)
	if len(recent) > 0 {
		b.WriteString("Recently completed:\n")
		for _, t := range recent {
			fmt.Fprintf(&b, "• %s (completed on %s)\n", t.Title, t.UpdatedAt.Format(month.ShortDateLayout))
		}
	}
	return b.String(), nil
}

func (s *Service) pending(ctx context.Context, userUID string, now time.Time) (string, error) {
	counts, err := s.tasks.CountTasks(ctx, userUID, month.Day(now))
	if err != nil {
		return "", err
	}
	if counts.Pending == 0 {
		return noPendingTasks, nil
	}
	tone := pendingAlmostDone
	switch {
	case counts.Pending > 5:
		tone = pendingQuiteAFew
	case counts.Pending > 2:
		tone = pendingGoodPace
	}
	return fmt.Sprintf("You have %d pending task(s). %s", counts.Pending, tone), nil
}

func (s *Service) highPriority(ctx context.Context, userUID string, _ time.Time) (string, error) {
	tasks, err := s.tasks.FindTasks(ctx, userUID, models.TaskQuery{
		Status:   models.StatusPending,
		Priority: models.PriorityHigh,
	})
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return noHighPriority, nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "⚠️ You have %d high priority task(s):\n", len(tasks))
	for _, t := range tasks {
		writeDated(&b, t)
	}
	return b.String(), nil
}

func (s *Service) count(ctx context.Context, userUID string, now time.Time) (string, error) {
	counts, err := s.tasks.CountTasks(ctx, userUID, month.Day(now))
	if err != nil {
		return "", err
	}
	if counts.Total == 0 {
		return noTasksAtAll, nil
	}
	return fmt.Sprintf("Task Summary:\n• Total: %d\n• Completed: %d\n• Pending: %d\n• Completion Rate: %.1f%%",
		counts.Total, counts.Completed, counts.Pending, CompletionRate(counts.Completed, counts.Total)), nil
}

// CompletionRate возвращает долю выполненных задач в процентах с одним знаком после запятой.
func CompletionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}

func dayList(header string, tasks []models.Task) string {
	var b strings.Builder
	b.WriteString(header)
	for _, t := range tasks {
		fmt.Fprintf(&b, "• %s at %s [%s]\n",
			t.Title, t.ScheduledAt.Format(month.Clock12Layout), strings.ToUpper(t.Priority))
	}
	return b.String()
}

func writeDated(b *strings.Builder, t models.Task) {
	fmt.Fprintf(b, "• %s on %s at %s\n",
		t.Title, t.ScheduledAt.Format(month.ShortDateLayout), t.ScheduledAt.Format(month.Clock12Layout))
}

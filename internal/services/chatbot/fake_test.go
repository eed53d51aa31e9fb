package chatbot

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/magabrotheeeer/work-reminder/internal/lib/month"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

// fakeTaskStore хранит задачи в памяти и повторяет семантику FindTasks хранилища.
type fakeTaskStore struct {
	tasks []models.Task
	err   error
}

func (f *fakeTaskStore) add(t models.Task) {
	t.ID = int64(len(f.tasks) + 1)
	if t.Status == "" {
		t.Status = models.StatusPending
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.ScheduledAt
	}
	f.tasks = append(f.tasks, t)
}

func (f *fakeTaskStore) FindTasks(_ context.Context, userUID string, q models.TaskQuery) ([]models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Task
	for _, t := range f.tasks {
		day := month.Day(t.ScheduledAt)
		switch {
		case t.UserUID != userUID,
			q.Status != "" && t.Status != q.Status,
			q.Priority != "" && t.Priority != q.Priority,
			q.From != nil && day.Before(*q.From),
			q.Before != nil && !day.Before(*q.Before):
			continue
		}
		out = append(out, t)
	}
	if q.RecentlyUpdated {
		sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	}
	if q.Limit > 0 && uint64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakeTaskStore) CountTasks(_ context.Context, userUID string, today time.Time) (models.TaskCounts, error) {
	if f.err != nil {
		return models.TaskCounts{}, f.err
	}
	var c models.TaskCounts
	for _, t := range f.tasks {
		if t.UserUID != userUID {
			continue
		}
		c.Total++
		if t.IsCompleted() {
			c.Completed++
			continue
		}
		c.Pending++
		if month.Day(t.ScheduledAt).Equal(today) {
			c.Today++
		}
	}
	return c, nil
}

type logEntry struct {
	userUID  string
	query    string
	response *string
}

// fakeTranscript журнал в памяти с управляемыми ошибками.
type fakeTranscript struct {
	entries   []logEntry
	appendErr error
	attachErr error
}

func (f *fakeTranscript) AppendQuery(_ context.Context, userUID, text string) (int64, error) {
	if f.appendErr != nil {
		return 0, f.appendErr
	}
	f.entries = append(f.entries, logEntry{userUID: userUID, query: text})
	return int64(len(f.entries)), nil
}

func (f *fakeTranscript) AttachResponse(_ context.Context, userUID string, id int64, text string) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	if id < 1 || int(id) > len(f.entries) || f.entries[id-1].userUID != userUID {
		return errors.New("no such log entry")
	}
	f.entries[id-1].response = &text
	return nil
}

func (f *fakeTranscript) AttachLatestResponse(_ context.Context, userUID, text string) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].userUID == userUID && f.entries[i].response == nil {
			f.entries[i].response = &text
			return nil
		}
	}
	return errors.New("no pending log entry")
}

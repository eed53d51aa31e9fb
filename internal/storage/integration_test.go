package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/work-reminder/internal/migrations"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// CreateUser создает тестового пользователя и возвращает его uid
func (f *TestDataFactory) CreateUser(t *testing.T, username string) string {
	t.Helper()
	uid, err := f.storage.CreateUser(context.Background(), models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
		FullName:     username,
	})
	require.NoError(t, err)
	return uid
}

// CreateTask создает тестовую задачу на момент at
func (f *TestDataFactory) CreateTask(t *testing.T, userUID, title string, at time.Time) int64 {
	t.Helper()
	id, err := f.storage.CreateTask(context.Background(), models.Task{
		UserUID:     userUID,
		Title:       title,
		ScheduledAt: at,
		Type:        models.TaskTypeDaily,
		Priority:    models.PriorityMedium,
	})
	require.NoError(t, err)
	return id
}

// setupTestDatabase создает тестовую БД с контейнером PostgreSQL и применяет миграции
func setupTestDatabase(t *testing.T) (*Storage, *TestDataFactory) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	root, err := filepath.Abs("../..")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB.DB, filepath.Join(root, "migrations")))

	return storage, &TestDataFactory{storage: storage}
}

func TestIntegration_ClaimDueReminders(t *testing.T) {
	storage, factory := setupTestDatabase(t)
	ctx := context.Background()

	now := time.Date(2030, 5, 20, 10, 0, 0, 0, time.UTC)
	uid := factory.CreateUser(t, "alice")
	dueID := factory.CreateTask(t, uid, "due now", now)
	factory.CreateTask(t, uid, "two minutes ago", now.Add(-2*time.Minute))
	factory.CreateTask(t, uid, "in a minute", now.Add(time.Minute))

	first, err := storage.ClaimDueReminders(ctx, uid, now.Add(-time.Minute), now)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, dueID, first[0].ID)
	assert.True(t, now.Equal(first[0].ScheduledAt))

	second, err := storage.ClaimDueReminders(ctx, uid, now.Add(-time.Minute), now)
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestIntegration_ClaimDueReminders_Concurrent(t *testing.T) {
	storage, factory := setupTestDatabase(t)
	ctx := context.Background()

	now := time.Date(2030, 5, 20, 10, 0, 0, 0, time.UTC)
	uid := factory.CreateUser(t, "bob")
	for i := 0; i < 5; i++ {
		factory.CreateTask(t, uid, "task", now.Add(-time.Duration(i)*time.Second))
	}

	const workers = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int
		seen  = make(map[int64]int)
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tasks, err := storage.ClaimDueReminders(ctx, uid, now.Add(-time.Minute), now)
			assert.NoError(t, err)
			mu.Lock()
			defer mu.Unlock()
			for _, task := range tasks {
				seen[task.ID]++
				total++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, total)
	for id, n := range seen {
		assert.Equal(t, 1, n, "task %d reminded more than once", id)
	}
}

func TestIntegration_TasksAreScopedByUser(t *testing.T) {
	storage, factory := setupTestDatabase(t)
	ctx := context.Background()

	at := time.Date(2030, 5, 20, 9, 0, 0, 0, time.UTC)
	alice := factory.CreateUser(t, "alice")
	bob := factory.CreateUser(t, "bob")
	aliceTask := factory.CreateTask(t, alice, "alice task", at)
	factory.CreateTask(t, bob, "bob task", at)

	tasks, err := storage.FindTasks(ctx, alice, models.TaskQuery{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "alice task", tasks[0].Title)

	_, err = storage.GetTask(ctx, bob, aliceTask)
	assert.Error(t, err)
	assert.Error(t, storage.DeleteTask(ctx, bob, aliceTask))

	counts, err := storage.CountTasks(ctx, alice, at)
	require.NoError(t, err)
	assert.Equal(t, models.TaskCounts{Total: 1, Pending: 1, Today: 1}, counts)
}

func TestIntegration_AdminProtection(t *testing.T) {
	storage, factory := setupTestDatabase(t)
	ctx := context.Background()

	adminUID, err := storage.CreateUser(ctx, models.User{
		Username: "root", Email: "root@example.com", PasswordHash: "x", FullName: "Root", Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	userUID := factory.CreateUser(t, "carol")
	factory.CreateTask(t, userUID, "carol task", time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC))

	_, err = storage.ToggleUserActive(ctx, adminUID)
	assert.Error(t, err)
	assert.Error(t, storage.DeleteUser(ctx, adminUID))

	active, err := storage.ToggleUserActive(ctx, userUID)
	require.NoError(t, err)
	assert.False(t, active)

	_, err = storage.GetActiveUserByLogin(ctx, "carol")
	assert.Error(t, err)

	users, err := storage.ListUsersWithStats(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.NoError(t, storage.DeleteUser(ctx, userUID))
	dash, err := storage.AdminDashboard(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, dash.TotalUsers)
	assert.Equal(t, 0, dash.TotalTasks)
}

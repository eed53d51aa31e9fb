package workreminder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/work-reminder/internal/cache"
	"github.com/magabrotheeeer/work-reminder/internal/config"
	"github.com/magabrotheeeer/work-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/work-reminder/internal/lib/jwt"
	"github.com/magabrotheeeer/work-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/work-reminder/internal/metrics"
	"github.com/magabrotheeeer/work-reminder/internal/migrations"
	adminservice "github.com/magabrotheeeer/work-reminder/internal/services/admin"
	authservice "github.com/magabrotheeeer/work-reminder/internal/services/auth"
	chatbotservice "github.com/magabrotheeeer/work-reminder/internal/services/chatbot"
	reminderservice "github.com/magabrotheeeer/work-reminder/internal/services/reminder"
	taskservice "github.com/magabrotheeeer/work-reminder/internal/services/task"
	"github.com/magabrotheeeer/work-reminder/internal/storage"
)

const shutdownTimeout = 15 * time.Second

// App HTTP-приложение с его ресурсами.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

// New подключается к PostgreSQL и Redis, применяет миграции и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	loc := cfg.Location()
	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	svc := Services{
		Auth:     authservice.NewService(db, jwtMaker, cacheRedis, logger),
		Tasks:    taskservice.NewService(db, cacheRedis, logger, loc, cfg.StatsTTL),
		Chatbot:  chatbotservice.NewService(db, db, logger, chatbotservice.WithLocation(loc), chatbotservice.WithMetrics(m)),
		Reminder: reminderservice.NewService(db, logger, loc, cfg.Window, m),
		Admin:    adminservice.NewService(db, cacheRedis, logger, cfg.StatsTTL),
		Health:   db,
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, svc, RouteOptions{
		PollInterval: cfg.PollInterval,
		Limiter:      middlewarectx.NewLimiter(cfg.RPS, cfg.Burst),
		Metrics:      m,
		Gatherer:     reg,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err = a.server.Shutdown(timeoutCtx)
	}
	a.close()
	return err
}

func (a *App) close() {
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("failed to close redis", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", sl.Err(err))
	}
}

// Package workreminder собирает HTTP-приложение: маршруты, middleware и зависимости.
package workreminder

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/work-reminder/docs"
	admindashboard "github.com/magabrotheeeer/work-reminder/internal/http/handlers/admin/dashboard"
	adminremove "github.com/magabrotheeeer/work-reminder/internal/http/handlers/admin/remove"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/admin/toggle"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/admin/users"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/chatbot/ask"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/health"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/reminder/scan"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/task/complete"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/task/create"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/task/dashboard"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/task/list"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/task/read"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/task/remove"
	"github.com/magabrotheeeer/work-reminder/internal/http/handlers/task/update"
	"github.com/magabrotheeeer/work-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/work-reminder/internal/metrics"
	adminservice "github.com/magabrotheeeer/work-reminder/internal/services/admin"
	authservice "github.com/magabrotheeeer/work-reminder/internal/services/auth"
	chatbotservice "github.com/magabrotheeeer/work-reminder/internal/services/chatbot"
	reminderservice "github.com/magabrotheeeer/work-reminder/internal/services/reminder"
	taskservice "github.com/magabrotheeeer/work-reminder/internal/services/task"
)

// Services набор сервисов, которые обслуживают маршруты.
type Services struct {
	Auth     *authservice.Service
	Tasks    *taskservice.Service
	Chatbot  *chatbotservice.Service
	Reminder *reminderservice.Service
	Admin    *adminservice.Service
	Health   health.Pinger
}

// RouteOptions параметры маршрутов, которые приходят из конфига.
type RouteOptions struct {
	PollInterval time.Duration
	Limiter      *middlewarectx.Limiter
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc Services, opts RouteOptions) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, svc.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, svc.Auth).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Auth, logger))
			r.Post("/logout", logout.New(logger, svc.Auth).ServeHTTP)

			r.Get("/dashboard", dashboard.New(logger, svc.Tasks).ServeHTTP)
			r.Get("/tasks", list.New(logger, svc.Tasks).ServeHTTP)
			r.Post("/tasks", create.New(logger, svc.Tasks).ServeHTTP)
			r.Get("/tasks/{id}", read.New(logger, svc.Tasks).ServeHTTP)
			r.Put("/tasks/{id}", update.New(logger, svc.Tasks).ServeHTTP)
			r.Delete("/tasks/{id}", remove.New(logger, svc.Tasks).ServeHTTP)
			r.Post("/tasks/{id}/complete", complete.New(logger, svc.Tasks).ServeHTTP)

			// Чат-бот и напоминания опрашиваются часто, поэтому ограничены по частоте
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RateLimitMiddleware(logger, opts.Limiter))
				r.Post("/chatbot", ask.New(logger, svc.Chatbot).ServeHTTP)
				r.Get("/reminders", scan.New(logger, svc.Reminder, opts.PollInterval).ServeHTTP)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewarectx.AdminOnly(logger))
				r.Get("/dashboard", admindashboard.New(logger, svc.Admin).ServeHTTP)
				r.Get("/users", users.New(logger, svc.Admin).ServeHTTP)
				r.Post("/users/{uid}/toggle", toggle.New(logger, svc.Admin).ServeHTTP)
				r.Delete("/users/{uid}", adminremove.New(logger, svc.Admin).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger, svc.Health).ServeHTTP)
	r.Handle("/metrics", metricsHandler(opts.Gatherer))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

func metricsHandler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Package metrics регистрирует метрики Prometheus приложения.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса.
type Metrics struct {
	ChatbotQueries      *prometheus.CounterVec
	ChatbotLogFailures  prometheus.Counter
	RemindersSent       prometheus.Counter
	HTTPRequestDuration *prometheus.HistogramVec
}

// New регистрирует метрики в reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ChatbotQueries: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_queries_total",
				Help: "Total number of chatbot queries by matched intent",
			},
			[]string{"intent"},
		),
		ChatbotLogFailures: f.NewCounter(
			prometheus.CounterOpts{
				Name: "chatbot_log_failures_total",
				Help: "Total number of failed chatbot transcript writes",
			},
		),
		RemindersSent: f.NewCounter(
			prometheus.CounterOpts{
				Name: "reminders_sent_total",
				Help: "Total number of reminders returned to clients",
			},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// Middleware замеряет длительность запросов по шаблону маршрута chi.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.HTTPRequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ChatbotQueries.WithLabelValues("greeting").Inc()
	m.ChatbotQueries.WithLabelValues("greeting").Inc()
	m.ChatbotLogFailures.Inc()
	m.RemindersSent.Add(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ChatbotQueries.WithLabelValues("greeting")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChatbotLogFailures))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RemindersSent))
}

func TestMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/tasks/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tasks/42", nil))
	require.Equal(t, http.StatusTeapot, rr.Code)

	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration))
	families, err := reg.Gather()
	require.NoError(t, err)

	labels := map[string]string{}
	for _, f := range families {
		if f.GetName() != "http_request_duration_seconds" {
			continue
		}
		require.Len(t, f.GetMetric(), 1)
		for _, l := range f.GetMetric()[0].GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
	}
	require.NotEmpty(t, labels, "http_request_duration_seconds not gathered")
	assert.Equal(t, "GET", labels["method"])
	assert.Equal(t, "/tasks/{id}", labels["route"])
	assert.Equal(t, "418", labels["status"])
}

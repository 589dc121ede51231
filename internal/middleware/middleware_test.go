package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "client error", status: http.StatusNotFound, wantLevel: "level=WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			r := chi.NewRouter()
			r.Use(chimw.RequestID)
			r.Use(Logger(logger))
			r.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte("body"))
			})

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/orders/1", nil))

			out := buf.String()
			assert.Contains(t, out, tc.wantLevel)
			assert.Contains(t, out, "path=/orders/1")
			assert.Contains(t, out, "bytes=4")
			assert.Contains(t, out, "request_id=")
		})
	}
}

func TestMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := requestsTotal.WithLabelValues(http.MethodGet, "/users/{id}", "418")
	before := value(t, counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/42", nil))

	assert.Equal(t, before+1, value(t, counter))
	assert.Equal(t, 0.0, value(t, inFlight))
}

func value(t *testing.T, m prometheus.Metric) float64 {
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("read metric: %v", err)
	}
	if out.Counter != nil {
		return out.Counter.GetValue()
	}
	return out.Gauge.GetValue()
}

func TestRoutePattern(t *testing.T) {
	r := chi.NewRouter()

	var got string
	r.Route("/users/{id}", func(r chi.Router) {
		r.Get("/orders", func(w http.ResponseWriter, r *http.Request) {
			got = routePattern(r)
		})
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/7/orders", nil))
	assert.Equal(t, "/users/{id}/orders", got)

	assert.Equal(t, "unknown", routePattern(httptest.NewRequest(http.MethodGet, "/", nil)))
}

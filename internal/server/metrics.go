package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"devops/info/internal/info"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// unmatchedRoute labels requests that hit no route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// metrics owns a private registry so several servers can coexist in one process.
type metrics struct {
	registry                   *prometheus.Registry
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec
}

func newMetrics(provider *info.Provider) (*metrics, error) {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "info_http_requests_total",
				Help: "Total number of HTTP requests received by the service.",
			},
			[]string{"route", "method", "status"},
		),
		httpRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "info_http_request_duration_seconds",
				Help:    "Duration of HTTP requests handled by the service.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
	}

	uptime := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "info_uptime_seconds",
			Help: "Whole seconds elapsed since the service started.",
		},
		func() float64 { return float64(provider.ComputeUptime().Seconds) },
	)

	collectorsToRegister := []prometheus.Collector{
		m.httpRequestsTotal,
		m.httpRequestDurationSeconds,
		uptime,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range collectorsToRegister {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return m, nil
}

// metricsMiddleware records basic request metrics for Prometheus (RPS and latency).
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		durationSeconds := time.Since(start).Seconds()
		status := strconv.Itoa(ww.Status())
		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		s.metrics.httpRequestsTotal.WithLabelValues(route, r.Method, status).Inc()
		s.metrics.httpRequestDurationSeconds.WithLabelValues(route, r.Method, status).Observe(durationSeconds)
	})
}

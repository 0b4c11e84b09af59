package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpDurationBuckets    = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
	storageDurationBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
)

// Metrics holds the Prometheus instruments of the builder service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	EventsTotal          *prometheus.CounterVec
	EventRejectionsTotal *prometheus.CounterVec
	RecomputationsTotal  *prometheus.CounterVec
	ActiveSessions       prometheus.Gauge

	PersistenceTotal    *prometheus.CounterVec
	PersistenceDuration *prometheus.HistogramVec
}

// InitMetrics creates and registers every instrument on reg.
func InitMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashbuilder_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path_pattern", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashbuilder_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: httpDurationBuckets,
		}, []string{"method", "path_pattern"}),

		EventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashbuilder_events_total",
			Help: "Total number of applied store events.",
		}, []string{"event"}),
		EventRejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashbuilder_event_rejections_total",
			Help: "Total number of rejected store events.",
		}, []string{"event", "reason"}),
		RecomputationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashbuilder_derived_recomputations_total",
			Help: "Total number of derived value recomputations.",
		}, []string{"derived"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dashbuilder_active_sessions",
			Help: "Number of open builder sessions.",
		}),

		PersistenceTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashbuilder_persistence_operations_total",
			Help: "Total number of document store operations.",
		}, []string{"operation", "collection", "status"}),
		PersistenceDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashbuilder_persistence_duration_seconds",
			Help:    "Document store operation duration in seconds.",
			Buckets: storageDurationBuckets,
		}, []string{"operation", "collection"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.EventsTotal,
		m.EventRejectionsTotal,
		m.RecomputationsTotal,
		m.ActiveSessions,
		m.PersistenceTotal,
		m.PersistenceDuration,
	)

	return m
}

// --- Recording helpers ---

func (m *Metrics) RecordHTTPRequest(method, pathPattern string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, pathPattern, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, pathPattern).Observe(duration.Seconds())
}

// OnDispatched counts an applied event.
func (m *Metrics) OnDispatched(event string) {
	m.EventsTotal.WithLabelValues(event).Inc()
}

// OnRejected counts a rejected event.
func (m *Metrics) OnRejected(event, reason string) {
	m.EventRejectionsTotal.WithLabelValues(event, reason).Inc()
}

// OnRecompute counts a derived value recomputation.
func (m *Metrics) OnRecompute(name string) {
	m.RecomputationsTotal.WithLabelValues(name).Inc()
}

func (m *Metrics) SessionOpened() { m.ActiveSessions.Inc() }

func (m *Metrics) SessionClosed() { m.ActiveSessions.Dec() }

// RecordPersistence records a document store call; status is "ok" or "error".
func (m *Metrics) RecordPersistence(operation, collection string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.PersistenceTotal.WithLabelValues(operation, collection, status).Inc()
	m.PersistenceDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
}

// Middleware records HTTP metrics keyed by the matched route pattern.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.RecordHTTPRequest(c.Request().Method, path, status, time.Since(start))
			return err
		}
	}
}

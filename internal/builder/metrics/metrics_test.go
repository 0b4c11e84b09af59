package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return InitMetrics(reg), reg
}

func TestInitMetricsRegistersAll(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	m.OnDispatched("addSection")
	m.OnRejected("addSection", "invalid")
	m.OnRecompute("globalFilters")
	m.SessionOpened()
	m.RecordPersistence("save", "dashboards", nil, time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"dashbuilder_http_requests_total",
		"dashbuilder_http_request_duration_seconds",
		"dashbuilder_events_total",
		"dashbuilder_event_rejections_total",
		"dashbuilder_derived_recomputations_total",
		"dashbuilder_active_sessions",
		"dashbuilder_persistence_operations_total",
		"dashbuilder_persistence_duration_seconds",
	} {
		assert.True(t, names[want], want)
	}
}

func TestObserverCounters(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.OnDispatched("addSection")
	m.OnDispatched("addSection")
	m.OnRejected("changePage", "invalid")
	m.OnRecompute("globalFilters")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("addSection")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventRejectionsTotal.WithLabelValues("changePage", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecomputationsTotal.WithLabelValues("globalFilters")))
}

func TestSessionsGauge(t *testing.T) {
	m, _ := newTestMetrics(t)
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveSessions))
}

func TestRecordPersistence(t *testing.T) {
	m, _ := newTestMetrics(t)
	m.RecordPersistence("save", "dashboards", nil, time.Millisecond)
	m.RecordPersistence("save", "dashboards", errors.New("boom"), time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PersistenceTotal.WithLabelValues("save", "dashboards", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PersistenceTotal.WithLabelValues("save", "dashboards", "error")))
}

func TestMiddleware(t *testing.T) {
	m, _ := newTestMetrics(t)
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/sessions/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/missing/:id", func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) })

	for _, path := range []string{"/sessions/a", "/sessions/b", "/missing/x"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/sessions/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/missing/:id", "404")))
}

package router

import (
	"dashbuilder/internal/builder/handler"
	"dashbuilder/internal/builder/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, h *handler.BuilderHandler, m *metrics.Metrics, gatherer prometheus.Gatherer) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))
	if m != nil {
		e.Use(m.Middleware())
	}

	e.GET("/health", handler.HealthCheck)
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	v1.GET("/events", h.GetEvents)

	// Sessions
	v1.POST("/sessions", h.PostSession)
	v1.DELETE("/sessions/:id", h.DeleteSession)
	v1.POST("/sessions/:id/events", h.PostEvent)
	v1.GET("/sessions/:id/cells/:name", h.GetCell)
	v1.GET("/sessions/:id/derived/:name", h.GetDerived)

	// Persistence
	v1.POST("/sessions/:id/documents", h.PostDocument)
	v1.POST("/sessions/:id/documents/:collection/load", h.PostLoadDocuments)
	v1.DELETE("/sessions/:id/documents/:collection/:docId", h.DeleteDocument)
	v1.POST("/sessions/:id/dashboards/:dashboardId/duplicate", h.PostDuplicateDashboard)
}

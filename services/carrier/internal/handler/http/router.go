package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oms-integration/mockcommerce/pkg/health"
	"github.com/oms-integration/mockcommerce/pkg/middleware"
	"github.com/oms-integration/mockcommerce/services/carrier/internal/service"
)

// NewRouter creates a chi router with all carrier stub routes registered.
func NewRouter(
	carrierService *service.CarrierService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("carrier"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Carrier API endpoints. Content-type checks live in the handlers so
	// the error shape matches the upstream carrier API.
	carrierHandler := NewCarrierHandler(carrierService, logger)

	r.Post("/labels", carrierHandler.GenerateLabel)
	r.Post("/pickups", carrierHandler.SchedulePickup)
	r.Get("/trackings/{trackingNumber}", carrierHandler.GetTracking)

	return r
}

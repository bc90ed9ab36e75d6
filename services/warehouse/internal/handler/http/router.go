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
	"github.com/oms-integration/mockcommerce/services/warehouse/internal/service"
)

// NewRouter creates a chi router with all warehouse stub routes registered.
func NewRouter(
	warehouseService *service.WarehouseService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("warehouse"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Warehouse API endpoints. Body checks live in the handlers so the
	// error shape matches the upstream warehouse API.
	warehouseHandler := NewWarehouseHandler(warehouseService, logger)

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", warehouseHandler.CreateOrder)
		r.Get("/{orderId}", warehouseHandler.GetOrder)
		r.Put("/{orderId}", warehouseHandler.ReplaceOrder)
		r.Patch("/{orderId}", warehouseHandler.PatchOrder)
		r.Delete("/{orderId}", warehouseHandler.DeleteOrder)
		r.Patch("/{orderId}/status", warehouseHandler.UpdateStatus)
	})

	return r
}

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
	"github.com/oms-integration/mockcommerce/services/catalog/internal/service"
)

// NewRouter creates a chi router with all catalog service routes registered.
func NewRouter(
	catalogService *service.CatalogService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("catalog"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Catalog API endpoints
	catalogHandler := NewCatalogHandler(catalogService, logger)

	r.Route("/products", func(r chi.Router) {
		r.Use(middleware.RequireJSON)

		r.Get("/", catalogHandler.ListProducts)
		r.Get("/{productId}", catalogHandler.GetProduct)
		r.Put("/{productId}", catalogHandler.UpdateProduct)
		r.Delete("/{productId}", catalogHandler.DeleteProduct)
		r.Get("/{productId}/availability", catalogHandler.GetAvailability)
	})

	return r
}

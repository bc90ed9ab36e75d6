package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/oms-integration/mockcommerce/pkg/health"
	"github.com/oms-integration/mockcommerce/services/orders/internal/config"
	handler "github.com/oms-integration/mockcommerce/services/orders/internal/handler/http"
	"github.com/oms-integration/mockcommerce/services/orders/internal/repository/memory"
	"github.com/oms-integration/mockcommerce/services/orders/internal/service"
)

// App wires together all dependencies and runs the orders stub.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// The stub holds its records in process memory; nothing external to
	// connect to.
	store := memory.NewOrderStore()
	if cfg.SeedData {
		if err := store.Seed(); err != nil {
			return nil, fmt.Errorf("seed order store: %w", err)
		}
		logger.Info("order store seeded with sample data")
	}

	orderService := service.NewOrderService(store, logger)

	healthHandler := health.NewHandler()

	router := handler.NewRouter(orderService, healthHandler, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}

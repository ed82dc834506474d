// SalesCode Payments
//
// Entry point of the payment gateway service. It wires the configured
// gateways into the HTTP API and serves it until SIGINT or SIGTERM.
//
// @title SalesCode Payments API
// @version 1.0.0
// @description Multi-gateway payment service: one-time checkouts, subscriptions and provider webhooks.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/salescode/salescode-payments/config"
	"github.com/salescode/salescode-payments/internal/adapters"
	"github.com/salescode/salescode-payments/internal/adapters/notifier"
	"github.com/salescode/salescode-payments/internal/api"
	"github.com/salescode/salescode-payments/internal/core/ports"
	"github.com/salescode/salescode-payments/internal/core/service"
	"github.com/salescode/salescode-payments/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "payments: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	defer logger.Sync()
	log := logger.L()

	log.Info("Starting SalesCode Payments",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
		zap.String("address", cfg.Server.Address()),
	)

	// Infrastructure
	gateways, err := adapters.BuildGateways(cfg, log)
	if err != nil {
		return err
	}
	if len(gateways) == 0 {
		log.Warn("No payment gateway configured, payment routes will reject every request")
	}

	var events ports.EventNotifier
	if cfg.Events.ForwardURL != "" {
		events = notifier.NewClient(cfg.Events.ForwardURL, cfg.Events.ForwardAPIKey, nil, log)
	}

	// Services
	registry := service.NewGatewayRegistry(gateways...)
	dispatcher := service.NewEventDispatcher(registry, events)

	// API
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := api.NewRateLimiter(cfg.Security.RateLimitMax, cfg.Security.RateLimitWindow)
	go limiter.Run(ctx, cfg.Security.RateLimitWindow)

	handler := api.NewHandler(registry, dispatcher, api.BuildInfo{
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
	})
	router := api.SetupRouter(handler, api.RouterConfig{
		GinMode:     cfg.Server.GinMode,
		AuthEnabled: cfg.Security.AuthEnabled,
		JWTSecret:   cfg.Security.JWTSecret,
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("address", srv.Addr), zap.Strings("gateways", registry.Available()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	log.Info("Server stopped")
	return nil
}

// Package app assembles the server: config, logger, database,
// services, transports, and the HTTP listener lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/vrusch/ModSkl/internal/adapter/postgres"
	catalogrepo "github.com/vrusch/ModSkl/internal/adapter/postgres/catalog"
	paintrepo "github.com/vrusch/ModSkl/internal/adapter/postgres/paint"
	"github.com/vrusch/ModSkl/internal/auth"
	"github.com/vrusch/ModSkl/internal/config"
	"github.com/vrusch/ModSkl/internal/service/assistant"
	catalogsvc "github.com/vrusch/ModSkl/internal/service/catalog"
	"github.com/vrusch/ModSkl/internal/service/inventory"
	"github.com/vrusch/ModSkl/internal/transport/middleware"
	"github.com/vrusch/ModSkl/internal/transport/rest"
	"github.com/vrusch/ModSkl/internal/transport/ws"
	"github.com/vrusch/ModSkl/internal/watch"
)

// Run is the application entry point. It blocks until ctx is cancelled,
// then drains in-flight requests and shuts down.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := migrate(ctx, cfg.Database.DSN); err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Stores and cross-cutting pieces.
	paints := paintrepo.New(pool)
	entries := catalogrepo.New(pool)
	txManager := postgres.NewTxManager(pool)
	notifier := watch.NewNotifier()
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	// Services. The catalog service doubles as the crowdsourcing sink
	// for inventory saves.
	catalogService := catalogsvc.NewService(logger, entries, notifier, cfg.Catalog)
	inventoryService := inventory.NewService(
		logger, paints, entries, catalogService, txManager, notifier,
		cfg.Inventory, cfg.Catalog,
	)

	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(jwtManager, logger),
		Paints:  rest.NewPaintHandler(inventoryService, logger),
		Catalog: rest.NewCatalogHandler(catalogService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		WS:      ws.NewHandler(jwtManager, notifier, logger),
	}

	if cfg.Assistant.Enabled() {
		client := anthropic.NewClient(option.WithAPIKey(cfg.Assistant.APIKey))
		assistantService := assistant.NewService(logger, &client.Messages, cfg.Assistant)
		handlers.Assistant = rest.NewAssistantHandler(assistantService, inventoryService, logger)
	} else {
		logger.Info("assistant disabled: no api key configured")
	}

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	// Auth runs before the limiter so authenticated traffic is keyed by
	// warehouse rather than by client address.
	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		rateLimiter.Limit(cfg.Server.RateLimitPerMinute),
	)(rest.NewRouter(handlers))

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

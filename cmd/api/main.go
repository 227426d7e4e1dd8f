package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	service := book.NewService(book.NewMemoryRepo(), book.WithStrictSearch(cfg.SearchStrict))

	if cfg.SeedFile != "" {
		if err := seedCatalog(ctx, service, cfg.SeedFile); err != nil {
			return err
		}
	}
	count, err := service.Count(ctx)
	if err != nil {
		return fmt.Errorf("count catalog: %w", err)
	}

	handler, stopLimiter := newRouter(cfg, logger, service)
	defer stopLimiter()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			"addr", cfg.Addr,
			"books", count,
			"strict_search", cfg.SearchStrict,
			"debug_routes", cfg.EnableDebugRoutes,
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func seedCatalog(ctx context.Context, service *book.Service, path string) error {
	books, err := book.LoadSeedFile(path)
	if err != nil {
		return err
	}
	if _, err := service.Seed(ctx, books); err != nil {
		return fmt.Errorf("seed catalog from %s: %w", path, err)
	}
	return nil
}

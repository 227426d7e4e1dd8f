package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/httpx"
)

// newRouter wires the book endpoints, the probes and the middleware stack.
// The returned stop function releases the rate limiter.
func newRouter(cfg config.Config, logger *slog.Logger, service *book.Service) (http.Handler, func()) {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		n, err := service.Count(r.Context())
		if err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "catalog not ready")
			return
		}
		httpx.JSONSuccess(w, map[string]any{"status": "ready", "books": n})
	})

	if cfg.EnableDebugRoutes {
		router.HandleFunc("GET /err", func(w http.ResponseWriter, r *http.Request) {
			panic(fmt.Sprintf("debug panic requested by %s", httpx.RequestIDFrom(r)))
		})
	}

	book.NewHTTPHandler(service, logger).RegisterRoutes(router)

	mws := []httpx.Middleware{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware(logger),
		httpx.SecurityHeadersMiddleware(false),
		httpx.CORSMiddleware(cfg.CORSAllowedOrigins),
	}

	stop := func() {}
	if cfg.RateLimitRPS > 0 {
		limiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
		mws = append(mws, limiter.Middleware)
		stop = limiter.Stop
	}
	mws = append(mws, httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))

	return httpx.Chain(router, mws...), stop
}

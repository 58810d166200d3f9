package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/comodds/protoslip/internal/server/handlers"
)

// Run starts the HTTP service and shuts it down when ctx is cancelled.
// Handler dependencies are injected through the handlers package before
// calling Run.
func Run(ctx context.Context, addr string, service string, readHeaderTimeout time.Duration) {
	mux := http.NewServeMux()

	// Health endpoints
	mux.HandleFunc("/ping", handlers.HandlePing)
	mux.HandleFunc("/health", handlers.HandleHealth)

	// Catalog snapshot
	mux.HandleFunc("/matches", handlers.HandleMatches)

	// Combination generation
	mux.HandleFunc("/generate", handlers.HandleGenerate)

	if readHeaderTimeout <= 0 {
		slog.Error("read_header_timeout must be specified in config")
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		slog.Info("Server listening", "service", service, "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "service", service, "error", err)
		}
	}()
}

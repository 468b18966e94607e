package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"roastline/internal/adapters/demo"
	"roastline/internal/config"
)

// Serve runs the seeded demo backend over HTTP: the PostgREST-style REST
// surface the storefront client consumes, plus /metrics.
func Serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	store := demo.NewSeededBackend()
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           demo.NewHandler(store, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("demo backend listening", "addr", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

package trigger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/daniloc96/member-roster-sync/internal/config"
	"github.com/daniloc96/member-roster-sync/internal/models"
)

// Runner performs one sync run for the given trigger.
type Runner func(ctx context.Context, trigger models.Trigger) (*models.SyncResult, error)

// NewHandler returns the HTTP surface: GET path runs a sync, GET /healthz
// reports liveness.
func NewHandler(path string, run Runner) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+path, func(w http.ResponseWriter, r *http.Request) {
		// A run is not cancelled when the client goes away.
		result, err := run(context.WithoutCancel(r.Context()), models.TriggerHTTP)
		if err != nil {
			writeText(w, http.StatusInternalServerError, models.ErrorMessage(err))
			return
		}
		writeText(w, http.StatusOK, result.Message())
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusOK, "ok")
	})
	return mux
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

// Server serves the HTTP trigger until its context is cancelled.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// NewServer creates a server for the sync endpoint.
func NewServer(cfg config.ServerConfig, run Runner) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      NewHandler(cfg.Path, run),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		logrus.WithField("addr", s.httpServer.Addr).Info("🌐 HTTP trigger listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logrus.Info("shutting down HTTP trigger")

		// The parent context is already cancelled.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		logrus.Info("HTTP trigger stopped")
		return nil
	}
}

package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"git.home.luguber.info/inful/nuxtdoc/internal/logfields"
)

// Server exposes the rendered content directory together with health,
// status, and metrics endpoints while the daemon runs.
type Server struct {
	daemon *Daemon
}

// NewServer creates the daemon's HTTP server.
func NewServer(d *Daemon) *Server {
	return &Server{daemon: d}
}

// ListenAndServe serves until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	cfg := s.daemon.config()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/status", s.handleStatus)
	mux.Handle("/metrics", s.daemon.recorder.Handler())
	mux.Handle("/", http.FileServer(http.Dir(cfg.ContentDirectory)))

	srv := &http.Server{
		Addr:              cfg.Watch.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Preview server shutdown", logfields.Error(err))
		}
	}()

	slog.Info("Preview server listening", slog.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStatus reports the most recent render run.
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	report := s.daemon.report()
	if report == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "no render yet"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":      report.RunID,
		"pages":       report.Pages,
		"files":       len(report.Files),
		"collisions":  report.Collisions,
		"skipped":     report.Skipped,
		"links":       report.Links,
		"duration_ms": report.Duration.Milliseconds(),
	})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Debug("Writing JSON response failed", logfields.Error(err))
	}
}

// Package server provides the read-only admin HTTP surface for a running
// deployment: the redacted configuration view, health, and metrics.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"opencrms/engine/pkg/config"
	"opencrms/engine/pkg/telemetry/logging"
)

// Server is the admin HTTP server. Every endpoint is read-only; the
// configuration it serves is the redacted view, so no credential can leave
// the process through this surface.
type Server struct {
	cfg          *config.DeploymentConfig
	adminCfg     config.AdminConfig
	logger       *logging.Logger
	registry     *prometheus.Registry
	httpServer   *http.Server
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates the admin server for a validated deployment. The
// registry carries the gateway metrics; nil disables the /metrics endpoint.
func NewServer(cfg *config.DeploymentConfig, logger *logging.Logger, registry *prometheus.Registry) *Server {
	adminCfg := cfg.Engine.Admin
	if adminCfg.ListenAddress == "" {
		adminCfg.ListenAddress = config.DefaultAdminListenAddress
	}
	if adminCfg.ShutdownTimeout <= 0 {
		adminCfg.ShutdownTimeout = config.DefaultAdminShutdownTimeout
	}

	return &Server{
		cfg:      cfg,
		adminCfg: adminCfg,
		logger:   logger,
		registry: registry,
	}
}

// Start starts the HTTP server and blocks until ctx is cancelled or a
// shutdown signal arrives.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("admin server is already running")
	}
	s.isRunning = true
	s.httpServer = &http.Server{
		Addr:    s.adminCfg.ListenAddress,
		Handler: s.Handler(),
	}
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting admin server", "address", s.adminCfg.ListenAddress)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("admin server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, stopping admin server")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		shutdownCtx, cancel := context.WithTimeout(ctx, s.adminCfg.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during admin server shutdown", "error", err.Error())
				shutdownErr = fmt.Errorf("admin server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("admin server stopped")
	})

	return shutdownErr
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/config", s.handleConfig)
	mux.HandleFunc("/healthz", s.handleHealthz)
	if s.registry != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	return mux
}

// handleConfig serves the redacted deployment configuration as JSON.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.cfg.Redacted()); err != nil {
		s.logger.Error("failed to encode configuration view", "error", err.Error())
	}
}

// handleHealthz reports process liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"country": s.cfg.CountryCode,
	})
}

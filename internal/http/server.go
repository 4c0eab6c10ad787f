// Package http exposes the simulator over HTTP: POST /v1/simulate to
// run a simulation and get back its logs and summary, GET /ws/ticks to
// watch an async run's ticks live, plus GET /health and GET /metrics.
// Grounded on the teacher's internal/http/server.go NewServer/routing
// shape and internal/http/response.go envelope, trimmed from a
// long-running elevator-fleet CRUD API to the read-mostly surface a
// batch simulator needs.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkaranasou/elevatorsim/internal/constants"
	"github.com/mkaranasou/elevatorsim/internal/engine"
	"github.com/mkaranasou/elevatorsim/internal/infra/config"
	"github.com/mkaranasou/elevatorsim/internal/infra/health"
)

// Server is the simulator's HTTP surface.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
	healthSvc  *health.Service

	mu      sync.RWMutex
	current *engine.Observed
	runErr  error
	running bool
}

// NewServer builds a Server bound to cfg.Port, with routes registered
// on a fresh ServeMux.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg:       cfg,
		logger:    slog.With(slog.String("component", constants.ComponentHTTPServer)),
		healthSvc: health.NewService(10 * time.Second),
	}

	s.healthSvc.Register(health.NewLivenessChecker())
	s.healthSvc.Register(health.NewSystemResourceChecker(85.0, 1000))
	s.healthSvc.Register(health.NewComponentChecker("simulation", s.simulationHealth))

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/simulate", s.handleSimulate)
	mux.HandleFunc(cfg.HealthPath, s.handleHealth)
	mux.HandleFunc(cfg.WebSocketPath, s.handleTicks)
	if cfg.MetricsEnabled {
		mux.Handle(cfg.MetricsPath, promhttp.Handler())
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("starting http server", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, results := s.healthSvc.OverallStatus(r.Context())

	code := http.StatusOK
	if status == health.StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]interface{}{
		"status": status,
		"checks": results,
	})
}

// simulationHealth reports whether the most recently started async
// run failed; with no run started yet, or a successful run, it's healthy.
func (s *Server) simulationHealth(context.Context) (bool, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.runErr != nil {
		return false, s.runErr.Error()
	}
	if s.running {
		return true, "simulation in progress"
	}
	return true, "idle"
}

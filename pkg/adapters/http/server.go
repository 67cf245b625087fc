// Package http exposes run execution and trace inspection over a JSON HTTP
// API. It is a thin transport layer: all coordination lives in the runs
// Manager and the machine registry it is handed.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/automkit/adapta/internal/logging"
	"github.com/automkit/adapta/pkg/domain"
	"github.com/automkit/adapta/pkg/runs"
)

// MachineLister enumerates the machines available for execution.
type MachineLister interface {
	Names() []string
}

// Server routes HTTP requests to a run Manager.
type Server struct {
	manager  *runs.Manager
	machines MachineLister
	version  string
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVersion sets the version string reported by GET /info.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// NewHandler builds the HTTP handler. When gatherer is non-nil the handler
// also serves Prometheus metrics on GET /metrics.
func NewHandler(manager *runs.Manager, machines MachineLister, gatherer prometheus.Gatherer, opts ...Option) stdhttp.Handler {
	s := &Server{
		manager:  manager,
		machines: machines,
		version:  "unknown",
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Post("/runs", s.CreateRun)
	r.Get("/runs", s.ListRuns)
	r.Get("/runs/{id}", s.GetRun)
	r.Delete("/runs/{id}", s.DeleteRun)
	r.Get("/machines", s.GetMachines)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if gatherer != nil {
		r.Method(stdhttp.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(stdhttp.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RunRequest is the body of POST /runs.
type RunRequest struct {
	RunID   string   `json:"run_id"`
	Machine string   `json:"machine"`
	Input   []string `json:"input"`
}

// CreateRun handles POST /runs: it executes the machine over the input and
// returns the persisted trace.
func (s *Server) CreateRun(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		stdhttp.Error(w, "Invalid request body", stdhttp.StatusBadRequest)
		s.logger.Warn("CreateRun: Invalid request body", "error", err)
		return
	}
	if body.RunID == "" || body.Machine == "" {
		stdhttp.Error(w, "run_id and machine are required", stdhttp.StatusBadRequest)
		return
	}

	result, err := s.manager.Execute(r.Context(), body.RunID, body.Machine, body.Input)
	if err != nil {
		if errors.Is(err, domain.ErrMachineNotFound) {
			stdhttp.Error(w, fmt.Sprintf("Unknown machine: %v", err), stdhttp.StatusNotFound)
			return
		}
		stdhttp.Error(w, fmt.Sprintf("Run error: %v", err), stdhttp.StatusInternalServerError)
		s.logger.Error("CreateRun failed", "run_id", body.RunID, "error", err)
		return
	}

	s.writeJSON(w, stdhttp.StatusCreated, result)
}

// GetRun handles GET /runs/{id}.
func (s *Server) GetRun(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	runID := chi.URLParam(r, "id")

	result, err := s.manager.Trace(r.Context(), runID)
	if err != nil {
		if errors.Is(err, domain.ErrTraceNotFound) {
			stdhttp.Error(w, "Run not found", stdhttp.StatusNotFound)
			return
		}
		stdhttp.Error(w, fmt.Sprintf("Trace error: %v", err), stdhttp.StatusInternalServerError)
		s.logger.Error("GetRun failed", "run_id", runID, "error", err)
		return
	}

	s.writeJSON(w, stdhttp.StatusOK, result)
}

// DeleteRun handles DELETE /runs/{id}.
func (s *Server) DeleteRun(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	runID := chi.URLParam(r, "id")

	if err := s.manager.Delete(r.Context(), runID); err != nil {
		if errors.Is(err, domain.ErrTraceNotFound) {
			stdhttp.Error(w, "Run not found", stdhttp.StatusNotFound)
			return
		}
		stdhttp.Error(w, fmt.Sprintf("Delete error: %v", err), stdhttp.StatusInternalServerError)
		s.logger.Error("DeleteRun failed", "run_id", runID, "error", err)
		return
	}

	w.WriteHeader(stdhttp.StatusNoContent)
}

// ListRuns handles GET /runs.
func (s *Server) ListRuns(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ids, err := s.manager.List(r.Context())
	if err != nil {
		stdhttp.Error(w, fmt.Sprintf("List error: %v", err), stdhttp.StatusInternalServerError)
		s.logger.Error("ListRuns failed", "error", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	s.writeJSON(w, stdhttp.StatusOK, map[string][]string{"runs": ids})
}

// GetMachines handles GET /machines.
func (s *Server) GetMachines(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	names := s.machines.Names()
	if names == nil {
		names = []string{}
	}

	s.writeJSON(w, stdhttp.StatusOK, map[string][]string{"machines": names})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	s.writeJSON(w, stdhttp.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	s.writeJSON(w, stdhttp.StatusOK, map[string]string{
		"app":     "adapta-http",
		"version": s.version,
	})
}

func (s *Server) writeJSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}

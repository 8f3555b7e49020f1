// Package server provides the HTTP REST API for the recommendation pipeline.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/major-advisor/internal/assets"
	"github.com/jonathan/major-advisor/internal/recommend"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *assets.Store
	log        *zap.Logger
	validator  *validator.Validate
	threshold  int
	policy     recommend.WeightPolicy
}

// Config holds server configuration.
type Config struct {
	Port      int
	Store     *assets.Store
	Logger    *zap.Logger
	Threshold int
	Policy    recommend.WeightPolicy
}

// New creates a new server instance. The asset store must already be
// constructed; whether its first load has completed only gates readiness.
func New(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		store:     cfg.Store,
		log:       log,
		validator: validator.New(),
		threshold: cfg.Threshold,
		policy:    cfg.Policy,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /recommend", s.handleRecommend)
	mux.HandleFunc("POST /recommend/jobs", s.handleRecommendJobs)
	mux.HandleFunc("POST /assets/reload", s.handleReload)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// handleHealth returns liveness status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady reports whether the asset snapshot has been loaded. Requests
// must not be served against a missing or partial snapshot.
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !s.store.Ready() {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleReload rebuilds the asset snapshot. Overlapping reloads coalesce into
// a single build; a failed build keeps the previous snapshot serving.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	// The build is shared by every coalesced caller, so it must outlive this
	// request: a disconnecting client cancels r.Context() for all of them.
	snap, err := s.store.Reload(context.WithoutCancel(r.Context()))
	if err != nil {
		s.log.Error("asset reload failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "asset reload failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":  "reloaded",
		"aliases": len(snap.Aliases),
		"majors":  len(snap.MajorDegree),
		"classes": len(snap.Model.Classes()),
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// Package server provides HTTP server management and lifecycle handling
// for the MedGPT API. It includes server setup, middleware configuration,
// route management, and graceful shutdown with proper error handling
// and logging.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NITHIN-BHAT/MedGPT/config"
	"github.com/NITHIN-BHAT/MedGPT/interfaces"
	"github.com/NITHIN-BHAT/MedGPT/logging"
	"github.com/NITHIN-BHAT/MedGPT/metrics"
)

// Server represents the HTTP server
type Server struct {
	server  *http.Server
	router  chi.Router
	handler interfaces.HTTPHandler
	config  *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, handler interfaces.HTTPHandler) *Server {
	router := chi.NewRouter()

	// Completions can take a while, keep the write timeout generous.
	server := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         cfg.Address + ":" + cfg.Port,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:  router,
		handler: handler,
		config:  cfg,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.LoggingMiddleware(currentLogger()))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(RateLimitHandler)
	s.router.Use(metrics.Metrics)
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handler.Home)
	s.router.Post("/ask", s.handler.Ask)
	s.router.Post("/profile_qa", s.handler.ProfileQA)
	s.router.Post("/brandmap_qa", s.handler.BrandMapQA)
	s.router.Post("/summarize", s.handler.Summarize)
	s.router.Get("/health", s.handler.HealthCheck)
	s.router.Get("/debug/models", s.handler.DebugModels)
	s.router.Handle("/metrics", promhttp.Handler())
}

// Router exposes the configured router, mainly for tests.
func (s *Server) Router() chi.Router {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	// Start profiling server if in development mode
	if s.config.Env == "dev" {
		s.startProfilingServer()
	}

	logging.Info(fmt.Sprintf("Starting server at: %s:%s", s.config.Address, s.config.Port))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		// If graceful shutdown fails, force close
		if err := s.server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
			return err
		}
	}

	// Wait a bit for any ongoing requests to complete
	logging.Info("Waiting for ongoing requests to complete...")
	time.Sleep(2 * time.Second)

	logging.Info("Server shutdown complete")
	return nil
}

// startProfilingServer starts the pprof profiling server in development mode
func (s *Server) startProfilingServer() {
	go func() {
		fmt.Println("Profiling server started at http://localhost:6060/debug/pprof/")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			fmt.Println("Profiling server failed: ", err)
		}
	}()
}

// currentLogger returns the configured logger or the slog default when
// logging has not been initialized (tests).
func currentLogger() *slog.Logger {
	if logging.DefaultLoggingService != nil && logging.DefaultLoggingService.Logger != nil {
		return logging.DefaultLoggingService.Logger
	}
	return slog.Default()
}

// respondWithJSON writes a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logging.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// Package api provides the HTTP API server and handlers for the Verdant application.
package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"log/slog"

	"github.com/verdantapp/verdant-server/internal/http/response"
	"github.com/verdantapp/verdant-server/internal/media/images"
	"github.com/verdantapp/verdant-server/internal/service"
	"github.com/verdantapp/verdant-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	scanService *service.ScanService
	photos      *images.Storage
	validator   *validation.Validator
	router      *chi.Mux
	api         huma.API
	logger      *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(scanService *service.ScanService, photos *images.Storage, serverName string, logger *slog.Logger) *Server {
	s := &Server{
		scanService: scanService,
		photos:      photos,
		validator:   validation.New(),
		router:      chi.NewRouter(),
		logger:      logger,
	}

	s.setupMiddleware()

	config := huma.DefaultConfig(serverName+" API", "1.0.0")
	config.DocsPath = "/docs"
	s.api = humachi.New(s.router, config)

	RegisterErrorHandler()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// The mobile app talks to the server from a WebView origin.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Plain chi routes: health and photo serving don't need OpenAPI schemas.
	s.router.Get("/health", s.handleHealthCheck)
	s.router.Get("/photos/{name}", s.handleGetPhoto)

	s.registerScanRoutes()
	s.registerHistoryRoutes()
	s.registerFavoriteRoutes()
	s.registerSearchRoutes()
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}

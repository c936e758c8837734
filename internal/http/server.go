package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	adminHTTP "github.com/trivalleytech/site-api/internal/admin/http"
	adminUseCase "github.com/trivalleytech/site-api/internal/admin/usecase"
	"github.com/trivalleytech/site-api/internal/config"
	contentHTTP "github.com/trivalleytech/site-api/internal/content/http"
	"github.com/trivalleytech/site-api/internal/metrics"
)

// Server is the public API server. Reads are open; mutating content routes
// sit behind the admin middleware.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// ServerDeps bundles the handlers and middleware inputs the server routes need.
type ServerDeps struct {
	AccessGate      adminUseCase.AccessGate
	AccessHandler   *adminHTTP.AccessHandler
	ProjectHandler  *contentHTTP.ProjectHandler
	ArticleHandler  *contentHTTP.ArticleHandler
	MetricsProvider *metrics.Provider
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg *config.Config, logger *slog.Logger, deps ServerDeps) *Server {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(LoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.RateLimitEnabled {
		router.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger))
	}

	if cfg.MetricsEnabled && deps.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(deps.MetricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	registerRoutes(router, logger, deps)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// registerRoutes wires every API route onto the router.
func registerRoutes(router *gin.Engine, logger *slog.Logger, deps ServerDeps) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	adminOnly := adminHTTP.AdminMiddleware(deps.AccessGate, logger)

	v1 := router.Group("/v1")
	{
		v1.GET("/admin/access", deps.AccessHandler.StatusHandler)

		v1.GET("/projects", deps.ProjectHandler.ListHandler)
		v1.GET("/projects/:id", deps.ProjectHandler.GetHandler)
		v1.POST("/projects", adminOnly, deps.ProjectHandler.CreateHandler)
		v1.PUT("/projects/:id", adminOnly, deps.ProjectHandler.UpdateHandler)
		v1.DELETE("/projects/:id", adminOnly, deps.ProjectHandler.DeleteHandler)

		v1.GET("/articles", deps.ArticleHandler.ListHandler)
		v1.GET("/articles/:id", deps.ArticleHandler.GetHandler)
		v1.POST("/articles", adminOnly, deps.ArticleHandler.CreateHandler)
		v1.PUT("/articles/:id", adminOnly, deps.ArticleHandler.UpdateHandler)
		v1.DELETE("/articles/:id", adminOnly, deps.ArticleHandler.DeleteHandler)
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

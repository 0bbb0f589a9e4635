package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authHTTP "github.com/narendran4787/BritTechDemo/internal/auth/http"
	catalogHTTP "github.com/narendran4787/BritTechDemo/internal/catalog/http"
)

// RouterConfig bundles the handlers and middleware the API router is
// assembled from. Nil middleware entries are skipped.
type RouterConfig struct {
	// CORSEnabled toggles the CORS middleware.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins.
	CORSAllowOrigins string

	// MetricsMiddleware records per-request metrics. Nil when metrics are disabled.
	MetricsMiddleware gin.HandlerFunc

	// TokenHandler serves the login and refresh endpoints.
	TokenHandler *authHTTP.TokenHandler
	// TokenRateLimit guards the unauthenticated token endpoints. Nil disables it.
	TokenRateLimit gin.HandlerFunc
	// RefreshMiddleware performs transparent mid-request token rotation.
	RefreshMiddleware gin.HandlerFunc
	// AuthMiddleware authenticates requests to protected routes.
	AuthMiddleware gin.HandlerFunc

	// ProductHandler serves the catalog endpoints.
	ProductHandler *catalogHTTP.ProductHandler

	// ReadyCheck reports whether downstream dependencies are reachable.
	// Nil means always ready.
	ReadyCheck func(ctx context.Context) error
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates the API server and assembles the Gin router.
func NewServer(
	host string,
	port int,
	logger *slog.Logger,
	cfg RouterConfig,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	registerRoutes(router, cfg, logger)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// registerRoutes wires all API endpoints into the router.
func registerRoutes(router *gin.Engine, cfg RouterConfig, logger *slog.Logger) {
	// Health and readiness endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		if cfg.ReadyCheck != nil {
			if err := cfg.ReadyCheck(c.Request.Context()); err != nil {
				logger.Warn("readiness check failed", slog.Any("error", err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Token endpoints are unauthenticated; the rate limit guards them
	auth := router.Group("/auth")
	if cfg.TokenRateLimit != nil {
		auth.Use(cfg.TokenRateLimit)
	}
	auth.POST("/token", cfg.TokenHandler.LoginHandler)
	auth.POST("/refresh", cfg.TokenHandler.RefreshHandler)

	// Protected API routes. The refresh middleware runs before the
	// authenticator so a rotated token authenticates its own request.
	v1 := router.Group("/v1")
	if cfg.RefreshMiddleware != nil {
		v1.Use(cfg.RefreshMiddleware)
	}
	v1.Use(cfg.AuthMiddleware)

	if cfg.ProductHandler != nil {
		products := v1.Group("/products")
		products.POST("", cfg.ProductHandler.CreateHandler)
		products.GET("", cfg.ProductHandler.ListHandler)
		products.GET("/:id", cfg.ProductHandler.GetHandler)
		products.PUT("/:id", cfg.ProductHandler.UpdateHandler)
		products.DELETE("/:id", cfg.ProductHandler.DeleteHandler)
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

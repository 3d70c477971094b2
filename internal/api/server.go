package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/AI2HU/mongoping/internal/db"
	"github.com/AI2HU/mongoping/internal/logger"
)

// CheckerFactory returns a fresh checker for each request
type CheckerFactory func() db.Checker

// APIResponse is the envelope for every response body
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Server exposes the connectivity check over HTTP
type Server struct {
	router     *gin.Engine
	newChecker CheckerFactory
	uri        string
	limiter    *rate.Limiter
}

// NewServer creates a server probing uri. A zero limit disables rate limiting.
func NewServer(uri string, newChecker CheckerFactory, limit rate.Limit, burst int) *Server {
	s := &Server{
		router:     gin.New(),
		newChecker: newChecker,
		uri:        uri,
	}
	if limit > 0 {
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(limit, burst)
	}

	s.router.Use(gin.Recovery(), s.rateLimit())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)

	v1 := s.router.Group("/api/v1")
	v1.GET("/health", s.healthCheck)
}

func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter != nil && !s.limiter.Allow() {
			s.errorResponse(c, http.StatusTooManyRequests, "Too many health checks, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Handler returns the underlying http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on address until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening on %s", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}

func (s *Server) successResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

func (s *Server) errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{Success: false, Error: message})
}

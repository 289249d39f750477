package server

import (
	"context"
	"ctchen222/user-auth/internal/api/controller"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("server")

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Options configures the HTTP engine.
type Options struct {
	RequestTimeout time.Duration
	HealthChecks   map[string]HealthCheck
}

type Server struct {
	engine *gin.Engine
	users  *controller.UserController
	checks map[string]HealthCheck
}

func NewServer(users *controller.UserController, opts Options) *Server {
	s := &Server{
		engine: gin.New(),
		users:  users,
		checks: opts.HealthChecks,
	}
	s.engine.Use(
		RequestID(),
		Tracing(),
		Logger(),
		Recovery(),
		Timeout(opts.RequestTimeout),
	)
	s.RegisterHandlers()
	return s
}

func (s *Server) RegisterHandlers() {
	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api/users")
	api.POST("/register", s.users.Register)
	api.GET("/register", s.users.Register)
	api.POST("/login", s.users.Login)
	api.GET("/details", s.users.Details)
}

// Engine returns the HTTP handler serving all routes.
func (s *Server) Engine() http.Handler {
	return s.engine
}

// handleHealth runs every registered check under the request deadline.
func (s *Server) handleHealth(c *gin.Context) {
	ctx := c.Request.Context()

	failed := map[string]string{}
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			slog.WarnContext(ctx, "health check failed", "check", name, "error", err)
			failed[name] = err.Error()
		}
	}

	if len(failed) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "failed": failed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

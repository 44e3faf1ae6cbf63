package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"minpai/internal/app"
	"minpai/internal/log"
)

// Server serves the decision API over HTTP.
type Server struct {
	engine     *gin.Engine
	server     *http.Server
	port       int
	controller *app.Controller
	tokens     *app.TokenService
}

// ServerOption customizes a Server.
type ServerOption func(*Server)

func WithPort(port int) ServerOption {
	return func(s *Server) {
		s.port = port
	}
}

// WithMode sets the gin mode: debug, release or test.
func WithMode(mode string) ServerOption {
	return func(s *Server) {
		gin.SetMode(mode)
	}
}

// WithTokens requires a valid bearer token on /api routes when tokens is
// enabled.
func WithTokens(tokens *app.TokenService) ServerOption {
	return func(s *Server) {
		s.tokens = tokens
	}
}

func NewServer(controller *app.Controller, opts ...ServerOption) *Server {
	s := &Server{
		port:       8080,
		controller: controller,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = gin.New()
	s.engine.Use(requestLogger(), gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.healthz)

	api := s.engine.Group("/api")
	if s.tokens.Enabled() {
		api.Use(bearerAuth(s.tokens))
	}
	api.POST("/game/ai-decision", s.aiDecision)
	api.POST("/game/ai-report-minpai", s.aiReportMinpai)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info("http server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Package gin provides the HTTP interface to rankcheck using the gin framework.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/rankcheck"
	"github.com/gin-gonic/gin"
)

// DefaultShutdownTimeout bounds how long Close waits for in-flight requests.
const DefaultShutdownTimeout = 5 * time.Second

// Server is the HTTP server exposing rank lookups and search history.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *gin.Engine

	searches rankcheck.SearchService
	logger   *slog.Logger

	addr            string
	allowedOrigins  []string
	rps             float64
	burst           int
	shutdownTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to ":5000".
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithAllowedOrigins sets the origins allowed by CORS.
// No CORS headers are sent when the list is empty.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// WithRateLimit enables per-client token-bucket rate limiting.
// A non-positive rps disables rate limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.rps = rps
		s.burst = burst
	}
}

// WithShutdownTimeout sets how long Close waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// NewServer creates a Server with its routes and middleware registered.
func NewServer(searches rankcheck.SearchService, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		searches:        searches,
		logger:          logger,
		addr:            ":5000",
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	if len(s.allowedOrigins) > 0 {
		r.Use(cors(s.allowedOrigins))
	}

	r.GET("/health", s.handleHealth)

	api := r.Group("/search")
	if s.rps > 0 {
		api.Use(rateLimit(s.rps, s.burst))
	}
	api.POST("/find-url-position", s.handleFindURLPosition)
	api.GET("/history", s.handleHistory)

	s.router = r
	s.server = &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen opens the listener on the configured address.
func (s *Server) Listen() (err error) {
	s.ln, err = net.Listen("tcp", s.addr)
	return err
}

// Serve accepts connections until Close is called. It returns nil after a
// graceful shutdown. Listen must be called first.
func (s *Server) Serve() error {
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Open begins listening on the configured address and serves in the background.
func (s *Server) Open() error {
	if err := s.Listen(); err != nil {
		return err
	}

	go func() {
		if err := s.Serve(); err != nil {
			s.logger.Error("http server stopped", "err", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Package gin exposes tutor.Tutor over HTTP using the gin web framework.
package gin

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/fwojciec/tutor"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultShutdownTimeout bounds how long Close waits for in-flight requests.
const DefaultShutdownTimeout = 10 * time.Second

// Server serves the tutoring endpoint and the liveness routes.
type Server struct {
	tutor           *tutor.Tutor
	logger          *zap.Logger
	checker         tutor.MarkupChecker
	addr            string
	allowOrigins    []string
	shutdownTimeout time.Duration

	engine *gin.Engine
	server *http.Server
	ln     net.Listener
}

// Option configures a [Server].
type Option func(*Server)

// WithAddr sets the listen address used by Open. Default is ":8000".
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithAllowOrigins sets the origins allowed by CORS. An empty list or a
// list containing "*" allows every origin.
func WithAllowOrigins(origins []string) Option {
	return func(s *Server) { s.allowOrigins = origins }
}

// WithMarkupChecker enables debug logging of markup left in answers.
func WithMarkupChecker(c tutor.MarkupChecker) Option {
	return func(s *Server) { s.checker = c }
}

// WithShutdownTimeout sets how long Close waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.shutdownTimeout = d }
}

// NewServer creates a Server answering requests with t. A nil logger
// disables logging.
func NewServer(t *tutor.Tutor, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		tutor:           t,
		logger:          logger,
		addr:            ":8000",
		allowOrigins:    []string{"*"},
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, o := range opts {
		o(s)
	}

	s.engine = gin.New()
	s.engine.Use(
		requestID(),
		accessLog(s.logger),
		recovery(s.logger),
		cors.New(corsConfig(s.allowOrigins)),
	)
	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.POST("/ask", s.handleAsk)
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Open starts listening on the configured address and serves requests in
// a background goroutine.
func (s *Server) Open(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.ln = ln
	s.server = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server stopped", zap.Error(err))
		}
	}()
	s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the bound listen address, or "" before Open.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Close gracefully shuts down the server. It is a no-op before Open.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	// Browsers reject a wildcard origin on credentialed requests.
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

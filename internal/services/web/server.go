package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/louisbranch/questboard/internal/platform/timeouts"
	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/services/web/app"
	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/questboard/internal/services/web/platform/i18n"
	"github.com/louisbranch/questboard/internal/services/web/platform/observability"
	"github.com/louisbranch/questboard/internal/services/web/platform/pagerender"
)

// Config defines the inputs for the dashboard server.
type Config struct {
	// HTTPAddr is the address the listener binds, e.g. ":8080".
	HTTPAddr string
	// Tracker owns goal and daily board state.
	Tracker *progress.Tracker
	// Languages resolves the request locale.
	Languages *i18n.Resolver
	// MCP, when set, is mounted at /mcp.
	MCP http.Handler
	// Logger receives request and handler logs. Nil uses the standard logger.
	Logger *log.Logger
}

// Server hosts the dashboard HTTP server.
type Server struct {
	httpAddr   string
	handler    http.Handler
	httpServer *http.Server
	logger     *log.Logger
}

// NewServer composes the dashboard handler.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.Tracker == nil {
		return nil, errors.New("tracker is required")
	}
	if config.Languages == nil {
		return nil, errors.New("language resolver is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	root, err := app.BuildRootHandler(app.Config{
		Dependencies: module.Dependencies{
			Tracker:  config.Tracker,
			Renderer: pagerender.New(config.Languages),
			Logger:   logger,
		},
		MCP: config.MCP,
	})
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	handler := httpx.Chain(root,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	)

	return &Server{
		httpAddr: httpAddr,
		handler:  handler,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		logger: logger,
	}, nil
}

// Handler returns the composed root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	if s == nil {
		return http.NotFoundHandler()
	}
	return s.handler
}

// ListenAndServe binds the configured address and serves until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve runs the HTTP server on listener until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("web listening addr=%s", listener.Addr())
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName = "questboard"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Transport selects how the MCP server is reached.
type Transport string

const (
	// TransportHTTP serves MCP as streamable HTTP under the web listener.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over the process stdin/stdout.
	TransportStdio Transport = "stdio"
	// TransportOff disables MCP.
	TransportOff Transport = "off"
)

// ParseTransport normalizes a configured transport name.
func ParseTransport(raw string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(raw))); t {
	case "":
		return TransportHTTP, nil
	case TransportHTTP, TransportStdio, TransportOff:
		return t, nil
	default:
		return "", fmt.Errorf("transport %q is not supported", raw)
	}
}

// Server wraps the MCP server bound to one tracker.
type Server struct {
	mcpServer *mcp.Server
	logger    *log.Logger
}

// New registers every tool and resource against tracker.
func New(tracker *progress.Tracker, logger *log.Logger) (*Server, error) {
	if tracker == nil {
		return nil, errors.New("tracker is required")
	}
	if logger == nil {
		logger = log.Default()
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		SubscribeHandler:   resourceSubscribeHandler,
		UnsubscribeHandler: resourceUnsubscribeHandler,
	})
	server := &Server{mcpServer: mcpServer, logger: logger}

	notify := func(ctx context.Context, uri string) {
		if err := mcpServer.ResourceUpdated(ctx, &mcp.ResourceUpdatedNotificationParams{URI: uri}); err != nil {
			logger.Printf("mcp resource updated notify failed: uri=%s err=%v", uri, err)
		}
	}
	registerTools(mcpServer, tracker, notify)
	registerResources(mcpServer, tracker)
	return server, nil
}

// MCPServer returns the underlying SDK server.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcpServer
}

// HTTPHandler serves the MCP streamable HTTP transport.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// Serve runs the server on transport until ctx ends or the peer disconnects.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return errors.New("MCP server is not configured")
	}
	if transport == nil {
		return errors.New("transport is required")
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// ServeStdio runs the server over stdin and stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Printf("mcp serving transport=stdio")
	return s.Serve(ctx, &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server, tracker *progress.Tracker, notify domain.ResourceUpdateNotifier) {
	mcp.AddTool(server, domain.GoalListTool(), domain.GoalListHandler(tracker))
	mcp.AddTool(server, domain.GoalGetTool(), domain.GoalGetHandler(tracker))
	mcp.AddTool(server, domain.ToggleFavoriteTool(), domain.ToggleFavoriteHandler(tracker, notify))
	mcp.AddTool(server, domain.DailyGetTool(), domain.DailyGetHandler(tracker))
	mcp.AddTool(server, domain.DailyNewTool(), domain.DailyNewHandler(tracker, notify))
	mcp.AddTool(server, domain.CompleteTaskTool(), domain.CompleteTaskHandler(tracker, notify))
	mcp.AddTool(server, domain.ResetTaskTool(), domain.ResetTaskHandler(tracker, notify))
}

func registerResources(server *mcp.Server, tracker *progress.Tracker) {
	server.AddResource(domain.GoalListResource(), domain.GoalListResourceHandler(tracker))
	server.AddResource(domain.DailyResource(), domain.DailyResourceHandler(tracker))
}

// resourceSubscribeHandler accepts subscriptions to a non-empty URI.
func resourceSubscribeHandler(_ context.Context, req *mcp.SubscribeRequest) error {
	if req == nil || req.Params == nil || strings.TrimSpace(req.Params.URI) == "" {
		return fmt.Errorf("resource uri is required")
	}
	return nil
}

func resourceUnsubscribeHandler(_ context.Context, req *mcp.UnsubscribeRequest) error {
	if req == nil || req.Params == nil || strings.TrimSpace(req.Params.URI) == "" {
		return fmt.Errorf("resource uri is required")
	}
	return nil
}

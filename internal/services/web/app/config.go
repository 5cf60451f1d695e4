package app

import (
	"net/http"

	"github.com/louisbranch/questboard/internal/services/web/module"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Dependencies module.Dependencies
	// MCP, when set, is mounted at /mcp.
	MCP http.Handler
}

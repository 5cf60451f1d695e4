// Package domain defines MCP tool and resource bindings over the progression
// tracker.
package domain

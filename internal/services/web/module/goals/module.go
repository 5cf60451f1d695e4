// Package goals serves the goals tab.
package goals

import (
	"errors"
	"net/http"

	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

// Module serves goal listing and favorite toggling.
type Module struct {
	deps module.Dependencies
}

// New returns the goals module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns the module identifier.
func (Module) ID() string { return "goals" }

// Mount builds the goals route handler.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Tracker == nil {
		return module.Mount{}, errors.New("tracker is required")
	}
	if m.deps.Renderer == nil {
		return module.Mount{}, errors.New("renderer is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{deps: m.deps})
	return module.Mount{Prefix: routepath.GoalsPrefix, Handler: mux}, nil
}

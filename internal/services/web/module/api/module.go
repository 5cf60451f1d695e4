// Package api serves read-only JSON views of goals and the daily board.
package api

import (
	"errors"
	"net/http"

	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

// Module serves the JSON API.
type Module struct {
	deps module.Dependencies
}

// New returns the API module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns the module identifier.
func (Module) ID() string { return "api" }

// Mount builds the API route handler.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Tracker == nil {
		return module.Mount{}, errors.New("tracker is required")
	}
	mux := http.NewServeMux()
	h := handlers{deps: m.deps}
	mux.HandleFunc(http.MethodGet+" "+routepath.APIGoals, h.handleGoals)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIGoals+"/{goalID}", h.handleGoal)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIDaily, h.handleDaily)
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}

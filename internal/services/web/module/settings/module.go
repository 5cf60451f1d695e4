// Package settings stores per-browser display preferences.
package settings

import (
	"errors"
	"net/http"

	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

// Module serves theme and language preference updates.
type Module struct {
	deps module.Dependencies
}

// New returns the settings module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns the module identifier.
func (Module) ID() string { return "settings" }

// Mount builds the settings route handler.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Renderer == nil {
		return module.Mount{}, errors.New("renderer is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{deps: m.deps})
	return module.Mount{Prefix: routepath.SettingsPrefix, Handler: mux}, nil
}

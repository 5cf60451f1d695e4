// Package public serves the root redirect and the liveness endpoint.
package public

import (
	"net/http"

	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

// Module owns "/" and everything no other module claims.
type Module struct{}

// New returns the public module.
func New() Module {
	return Module{}
}

// ID returns the module identifier.
func (Module) ID() string { return "public" }

// Mount builds the public route handler.
func (Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routepath.Goals, http.StatusFound)
	})
	mux.HandleFunc(http.MethodGet+" "+routepath.Healthz, func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

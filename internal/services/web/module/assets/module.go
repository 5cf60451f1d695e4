// Package assets serves the embedded stylesheet.
package assets

import (
	"io/fs"
	"net/http"

	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
	"github.com/louisbranch/questboard/internal/services/web/static"
)

// Module serves files under /static/.
type Module struct {
	files fs.FS
}

// New returns the assets module over the embedded static files.
func New() Module {
	return Module{files: static.FS}
}

// ID returns the module identifier.
func (Module) ID() string { return "assets" }

// Mount builds the static file handler.
func (m Module) Mount() (module.Mount, error) {
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(m.files))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: handler}, nil
}

// Package module defines the feature contract used by web composition.
package module

import (
	"log"
	"net/http"

	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/services/web/platform/pagerender"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Dependencies are the shared services handed to every module.
type Dependencies struct {
	Tracker  *progress.Tracker
	Renderer *pagerender.Renderer
	Logger   *log.Logger
}

// Logf logs through the configured logger or the standard logger.
func (d Dependencies) Logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Package templates renders web pages as templ components.
package templates

import (
	"html"
	"io"
	"strings"

	"github.com/louisbranch/questboard/internal/services/web/platform/i18n"
)

// Localizer formats catalog messages.
type Localizer = i18n.Localizer

// T returns a translated string or the key when no localizer is set.
func T(loc Localizer, key string, args ...any) string {
	return i18n.T(loc, key, args...)
}

// writer collects the first write error so templates read top to bottom.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(parts ...string) {
	for _, part := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, part)
	}
}

func (w *writer) text(value string) {
	w.raw(html.EscapeString(value))
}

func attr(name, value string) string {
	return " " + name + `="` + html.EscapeString(value) + `"`
}

func classes(names ...string) string {
	kept := names[:0:0]
	for _, name := range names {
		if strings.TrimSpace(name) != "" {
			kept = append(kept, name)
		}
	}
	return strings.Join(kept, " ")
}

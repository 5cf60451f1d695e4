// Package theme stores the light, dark or system color scheme preference.
package theme

import (
	"net/http"
	"strings"
	"time"
)

// CookieName is the cookie holding the theme preference.
const CookieName = "qb_theme"

// Theme is a color scheme preference.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

// Default is used when no preference was saved.
const Default = System

// All lists every theme in menu order.
func All() []Theme {
	return []Theme{Light, Dark, System}
}

// Parse normalizes a raw preference and reports whether it is known.
func Parse(raw string) (Theme, bool) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(raw))); t {
	case Light, Dark, System:
		return t, true
	default:
		return "", false
	}
}

// FromRequest returns the saved theme or Default.
func FromRequest(r *http.Request) Theme {
	if r == nil {
		return Default
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Default
	}
	if t, ok := Parse(cookie.Value); ok {
		return t
	}
	return Default
}

// Write saves the theme preference for a year.
func Write(w http.ResponseWriter, r *http.Request, t Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(t),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   r != nil && r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// HTMLClass returns the root element class for t.
func (t Theme) HTMLClass() string {
	if t == Dark {
		return "dark"
	}
	return ""
}

// ColorScheme returns the color-scheme meta value for t.
func (t Theme) ColorScheme() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "light dark"
	}
}

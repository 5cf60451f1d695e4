// Package i18n resolves the request language and its message printer.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/questboard/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the language preference.
	LangCookieName = "qb_lang"
)

// Localizer formats catalog messages for one language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Option is a selectable language in the page chrome.
type Option struct {
	Tag    string
	Label  string
	Active bool
}

// Resolver picks a supported language for each request.
type Resolver struct {
	supported []language.Tag
	matcher   language.Matcher
	fallback  language.Tag
}

// NewResolver builds a resolver over the bundle's locales. defaultLocale is
// used when nothing on the request matches; it falls back to the bundle's
// base locale when unsupported.
func NewResolver(bundle *catalog.Bundle, defaultLocale string) *Resolver {
	if bundle == nil {
		bundle = catalog.Default()
	}
	supported := bundle.Tags()
	r := &Resolver{
		supported: supported,
		matcher:   language.NewMatcher(supported),
		fallback:  supported[0],
	}
	if tag, ok := r.Parse(defaultLocale); ok {
		r.fallback = tag
	}
	return r
}

// Default returns the fallback language.
func (r *Resolver) Default() language.Tag {
	return r.fallback
}

// Parse maps a raw tag to the closest supported language.
func (r *Resolver) Parse(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Und, false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, false
	}
	_, index, confidence := r.matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return r.supported[index], true
}

// Resolve returns the request language: ?lang= first (persisted to a
// cookie), then the cookie, then Accept-Language, then the default.
func (r *Resolver) Resolve(w http.ResponseWriter, req *http.Request) language.Tag {
	if req == nil {
		return r.fallback
	}
	if tag, ok := r.Parse(req.URL.Query().Get(LangParam)); ok {
		if w != nil {
			SetLanguageCookie(w, tag)
		}
		return tag
	}
	if cookie, err := req.Cookie(LangCookieName); err == nil {
		if tag, ok := r.Parse(cookie.Value); ok {
			return tag
		}
	}
	if accept := strings.TrimSpace(req.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, confidence := r.matcher.Match(tags...)
			if confidence != language.No {
				return r.supported[index]
			}
		}
	}
	return r.fallback
}

// Localizer returns the message printer for the request language.
func (r *Resolver) Localizer(w http.ResponseWriter, req *http.Request) (Localizer, language.Tag) {
	tag := r.Resolve(w, req)
	return message.NewPrinter(tag), tag
}

// Options lists supported languages labeled in their own language.
func (r *Resolver) Options(active language.Tag) []Option {
	options := make([]Option, 0, len(r.supported))
	for _, tag := range r.supported {
		label := display.Self.Name(tag)
		if label == "" {
			label = tag.String()
		}
		options = append(options, Option{Tag: tag.String(), Label: label, Active: tag == active})
	}
	return options
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// T formats key with loc, falling back to the key itself.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}

// Package pagerender centralizes page rendering for web modules.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/questboard/internal/platform/errors"
	"github.com/louisbranch/questboard/internal/services/web/platform/flash"
	"github.com/louisbranch/questboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/questboard/internal/services/web/platform/i18n"
	"github.com/louisbranch/questboard/internal/services/web/platform/theme"
	"github.com/louisbranch/questboard/internal/services/web/templates"
	"golang.org/x/text/language"
)

// View is the per-request language state used to build page bodies.
type View struct {
	Loc  i18n.Localizer
	Lang language.Tag
}

// Page describes one full page response.
type Page struct {
	TitleKey   string
	ActiveTab  string
	StatusCode int
	Body       templ.Component
}

// Renderer writes pages inside the shared layout.
type Renderer struct {
	languages *i18n.Resolver
}

// New returns a renderer resolving languages with languages.
func New(languages *i18n.Resolver) *Renderer {
	return &Renderer{languages: languages}
}

// Languages returns the language resolver.
func (r *Renderer) Languages() *i18n.Resolver {
	return r.languages
}

// View resolves the request language. It may set the language cookie, so
// call it before writing the response body.
func (r *Renderer) View(w http.ResponseWriter, req *http.Request) View {
	loc, tag := r.languages.Localizer(w, req)
	return View{Loc: loc, Lang: tag}
}

// Write renders page inside the layout, consuming any pending flash notice.
func (r *Renderer) Write(w http.ResponseWriter, req *http.Request, view View, page Page) error {
	status := page.StatusCode
	if status <= 0 {
		status = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}
	title := ""
	if page.TitleKey != "" {
		title = i18n.T(view.Loc, page.TitleKey)
	}

	layout := templates.Layout(templates.LayoutData{
		Lang:        view.Lang.String(),
		Title:       title,
		ActiveTab:   page.ActiveTab,
		CurrentPath: currentPath(req),
		Theme:       theme.FromRequest(req),
		Languages:   r.languages.Options(view.Lang),
		Toast:       toastFromFlash(w, req, view.Loc),
		Loc:         view.Loc,
	})

	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(httpx.RequestContext(req), body), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteError renders err as a localized error page with its mapped status.
func (r *Renderer) WriteError(w http.ResponseWriter, req *http.Request, view View, activeTab string, err error) error {
	status := apperrors.HTTPStatus(err)
	message := i18n.T(view.Loc, apperrors.MessageKey(err))
	return r.Write(w, req, view, Page{
		ActiveTab:  activeTab,
		StatusCode: status,
		Body:       templates.ErrorPage(status, message, view.Loc),
	})
}

func toastFromFlash(w http.ResponseWriter, req *http.Request, loc i18n.Localizer) *templates.Toast {
	notice, ok := flash.ReadAndClear(w, req)
	if !ok {
		return nil
	}
	args := make([]any, 0, len(notice.Args))
	for _, arg := range notice.Args {
		args = append(args, arg)
	}
	message := strings.TrimSpace(i18n.T(loc, notice.Key, args...))
	if message == "" {
		return nil
	}
	return &templates.Toast{Kind: string(notice.Kind), Message: message}
}

func currentPath(req *http.Request) string {
	if req == nil || req.URL == nil {
		return "/"
	}
	return req.URL.RequestURI()
}

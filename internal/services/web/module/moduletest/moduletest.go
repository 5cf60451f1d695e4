// Package moduletest builds seeded dependencies for web module tests.
package moduletest

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/questboard/internal/platform/i18n/catalog"
	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/progress/storage/memory"
	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/platform/i18n"
	"github.com/louisbranch/questboard/internal/services/web/platform/pagerender"
	"golang.org/x/net/html"
)

// Env is a seeded tracker plus the module dependencies built around it.
type Env struct {
	Store *memory.Store
	Deps  module.Dependencies
}

// New seeds the default catalog and, when ids are given, stores them as the
// current daily board.
func New(t testing.TB, ids ...string) Env {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	if err := progress.Seed(ctx, store, progress.DefaultCatalog()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(ids) > 0 {
		if err := store.PutDaily(ctx, progress.NewDailyFromIDs(ids)); err != nil {
			t.Fatalf("put daily: %v", err)
		}
	}
	tracker, err := progress.NewTracker(store, progress.NewSelector(7))
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return Env{
		Store: store,
		Deps: module.Dependencies{
			Tracker:  tracker,
			Renderer: pagerender.New(i18n.NewResolver(catalog.Default(), catalog.BaseLocale)),
			Logger:   log.New(io.Discard, "", 0),
		},
	}
}

// Handler mounts a module and fails the test on error.
func Handler(t testing.TB, m module.Module) http.Handler {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("mount %s: %v", m.ID(), err)
	}
	return mount.Handler
}

// Do serves one request and returns the recorder.
func Do(h http.Handler, method, target string, form string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != "" {
		body = strings.NewReader(form)
	}
	req := httptest.NewRequest(method, target, body)
	if form != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// Cookie returns the named cookie set on the response.
func Cookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Parse parses an HTML response body.
func Parse(t testing.TB, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// FindAll collects every node matching fn.
func FindAll(n *html.Node, fn func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	if fn(n) {
		out = append(out, n)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		out = append(out, FindAll(child, fn)...)
	}
	return out
}

// HasAttr reports whether n is an element carrying key.
func HasAttr(key string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasKey(n, key)
	}
}

// Attr returns the value of key on n.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasKey(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

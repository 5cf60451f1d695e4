package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/questboard/internal/services/web/module"
)

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
	if !strings.Contains(err.Error(), `"two"`) || !strings.Contains(err.Error(), `"one"`) {
		t.Fatalf("error = %q, want both module ids", err)
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "missing leading slash", prefix: "goals/"},
		{name: "missing trailing slash", prefix: "/goals"},
		{name: "contains surrounding whitespace", prefix: "/goals/ "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModuleAndHandler(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil module error")
	}
	_, err := Compose(ComposeInput{Modules: []module.Module{stubModule{id: "empty", mount: module.Mount{Prefix: "/empty/"}}}})
	if err == nil || !strings.Contains(err.Error(), "handler is required") {
		t.Fatalf("error = %v, want handler is required", err)
	}
}

func TestComposeMountsSlashlessAlias(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "public", mount: module.Mount{Prefix: "/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})}},
			stubModule{id: "goals", mount: module.Mount{Prefix: "/goals/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for path, want := range map[string]int{
		"/goals":   http.StatusNoContent,
		"/goals/x": http.StatusNoContent,
		"/other":   http.StatusTeapot,
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != want {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, want)
		}
	}
}

func TestComposeRejectsCrossOriginMutation(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "tasks", mount: module.Mount{Prefix: "/tasks/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{name: "no origin", want: http.StatusNoContent},
		{name: "same origin", header: map[string]string{"Origin": "http://example.com"}, want: http.StatusNoContent},
		{name: "other origin", header: map[string]string{"Origin": "http://evil.test"}, want: http.StatusForbidden},
		{name: "cross site fetch", header: map[string]string{"Sec-Fetch-Site": "cross-site"}, want: http.StatusForbidden},
		{name: "opaque origin", header: map[string]string{"Origin": "null"}, want: http.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "http://example.com/tasks/1/complete", nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount() (module.Mount, error) {
	return s.mount, s.err
}

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/questboard/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var (
	enUS = language.MustParse("en-US")
	ptBR = language.MustParse("pt-BR")
)

func TestResolveOrder(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(catalog.Default(), "en-US")
	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   language.Tag
	}{
		{name: "default", target: "/", want: enUS},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9", want: ptBR},
		{name: "accept portuguese base", target: "/", accept: "pt", want: ptBR},
		{name: "cookie beats accept", target: "/", cookie: "en-US", accept: "pt-BR", want: enUS},
		{name: "query beats cookie", target: "/?lang=pt-BR", cookie: "en-US", want: ptBR},
		{name: "unsupported query ignored", target: "/?lang=xx-invalid-", cookie: "pt-BR", want: ptBR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			if got := resolver.Resolve(httptest.NewRecorder(), req); got != tt.want {
				t.Fatalf("Resolve = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveQueryPersistsCookie(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(catalog.Default(), "en-US")
	rr := httptest.NewRecorder()
	resolver.Resolve(rr, httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %v, want %s=pt-BR", cookies, LangCookieName)
	}
}

func TestDefaultLocaleOverride(t *testing.T) {
	t.Parallel()

	if got := NewResolver(catalog.Default(), "pt-BR").Default(); got != ptBR {
		t.Fatalf("default = %v, want pt-BR", got)
	}
	if got := NewResolver(catalog.Default(), "").Default(); got != enUS {
		t.Fatalf("default = %v, want en-US", got)
	}
}

func TestLocalizerTranslates(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(catalog.Default(), "en-US")
	req := httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	loc, tag := resolver.Localizer(httptest.NewRecorder(), req)
	if tag != ptBR {
		t.Fatalf("tag = %v, want pt-BR", tag)
	}
	if got := T(loc, "nav.goals"); got != "Metas" {
		t.Fatalf("nav.goals = %q, want Metas", got)
	}
	if got := T(nil, "nav.goals"); got != "nav.goals" {
		t.Fatalf("nil localizer = %q, want key", got)
	}
}

func TestOptionsMarkActive(t *testing.T) {
	t.Parallel()

	options := NewResolver(catalog.Default(), "en-US").Options(ptBR)
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if options[0].Active || !options[1].Active {
		t.Fatalf("options = %+v, want pt-BR active", options)
	}
	if options[1].Label == "" {
		t.Fatal("expected label")
	}
}

package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Theme
		ok   bool
	}{
		{raw: "light", want: Light, ok: true},
		{raw: " DARK ", want: Dark, ok: true},
		{raw: "system", want: System, ok: true},
		{raw: "sepia", ok: false},
		{raw: "", ok: false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("Parse(%q) = %q, %v, want %q, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFromRequestRoundTrip(t *testing.T) {
	t.Parallel()

	if got := FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)); got != Default {
		t.Fatalf("theme = %q, want %q", got, Default)
	}

	rr := httptest.NewRecorder()
	Write(rr, nil, Dark)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rr.Result().Cookies() {
		req.AddCookie(cookie)
	}
	if got := FromRequest(req); got != Dark {
		t.Fatalf("theme = %q, want dark", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "neon"})
	if got := FromRequest(req); got != Default {
		t.Fatalf("theme = %q, want default for unknown value", got)
	}
}

func TestPresentation(t *testing.T) {
	t.Parallel()

	if Dark.HTMLClass() != "dark" || Light.HTMLClass() != "" || System.HTMLClass() != "" {
		t.Fatal("only dark sets the root class")
	}
	if System.ColorScheme() != "light dark" {
		t.Fatalf("system color scheme = %q", System.ColorScheme())
	}
}

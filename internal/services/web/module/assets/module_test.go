package assets

import (
	"net/http"
	"strings"
	"testing"

	"github.com/louisbranch/questboard/internal/services/web/module/moduletest"
)

func TestServesStylesheet(t *testing.T) {
	t.Parallel()

	h := moduletest.Handler(t, New())
	rr := moduletest.Do(h, http.MethodGet, "/static/app.css", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Fatalf("Content-Type = %q, want text/css", ct)
	}
	if !strings.Contains(rr.Body.String(), "--accent") {
		t.Fatalf("stylesheet body missing theme variables")
	}
}

func TestRejectsPostAndMissingFiles(t *testing.T) {
	t.Parallel()

	h := moduletest.Handler(t, New())
	if rr := moduletest.Do(h, http.MethodPost, "/static/app.css", ""); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if rr := moduletest.Do(h, http.MethodGet, "/static/missing.css", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

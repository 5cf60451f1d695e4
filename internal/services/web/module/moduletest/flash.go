package moduletest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/questboard/internal/services/web/platform/flash"
)

// Flash decodes the flash notice a response set, failing when none was set.
func Flash(t testing.TB, rr *httptest.ResponseRecorder) flash.Notice {
	t.Helper()
	cookie := Cookie(rr, flash.CookieName)
	if cookie == nil {
		t.Fatalf("response set no %s cookie", flash.CookieName)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	notice, ok := flash.ReadAndClear(httptest.NewRecorder(), req)
	if !ok {
		t.Fatalf("flash cookie %q did not decode", cookie.Value)
	}
	return notice
}

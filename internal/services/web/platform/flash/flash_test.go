package flash

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteThenReadAndClear(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodPost, "/tasks/0/complete", nil), Success("toast.task_completed", "10"))
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %v, want one %s cookie", cookies, CookieName)
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.AddCookie(cookies[0])
	rr = httptest.NewRecorder()
	notice, ok := ReadAndClear(rr, req)
	if !ok {
		t.Fatal("expected notice")
	}
	if notice.Kind != KindSuccess || notice.Key != "toast.task_completed" || len(notice.Args) != 1 || notice.Args[0] != "10" {
		t.Fatalf("notice = %+v", notice)
	}
	cleared := rr.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("cleared cookies = %v, want expired cookie", cleared)
	}
}

func TestWriteIgnoresInvalidNotices(t *testing.T) {
	t.Parallel()

	for _, notice := range []Notice{
		{Kind: KindSuccess},
		{Kind: "loud", Key: "toast.x"},
	} {
		rr := httptest.NewRecorder()
		Write(rr, nil, notice)
		if len(rr.Result().Cookies()) != 0 {
			t.Fatalf("notice %+v wrote a cookie", notice)
		}
	}
}

func TestReadAndClearRejectsTamperedCookie(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"%%%", base64.RawURLEncoding.EncodeToString([]byte("{"))} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: value})
		if _, ok := ReadAndClear(httptest.NewRecorder(), req); ok {
			t.Fatalf("cookie %q decoded", value)
		}
	}
}

func TestReadAndClearWithoutCookie(t *testing.T) {
	t.Parallel()

	if _, ok := ReadAndClear(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("expected no notice")
	}
}

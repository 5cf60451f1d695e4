package settings

import (
	"net/http"
	"testing"

	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/module/moduletest"
	"github.com/louisbranch/questboard/internal/services/web/platform/i18n"
	"github.com/louisbranch/questboard/internal/services/web/platform/theme"
)

func TestMountRequiresRenderer(t *testing.T) {
	t.Parallel()

	if _, err := New(module.Dependencies{}).Mount(); err == nil {
		t.Fatalf("expected mount error without renderer")
	}
}

func TestThemeStoresCookieAndReturns(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodPost, "/settings/theme", "theme=dark&return_to=%2Ftasks")
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/tasks" {
		t.Fatalf("status = %d location = %q, want 303 /tasks", rr.Code, rr.Header().Get("Location"))
	}
	cookie := moduletest.Cookie(rr, theme.CookieName)
	if cookie == nil || cookie.Value != string(theme.Dark) {
		t.Fatalf("theme cookie = %v, want dark", cookie)
	}
	if notice := moduletest.Flash(t, rr); notice.Key != "toast.theme_updated" {
		t.Fatalf("flash key = %q, want toast.theme_updated", notice.Key)
	}
}

func TestThemeRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodPost, "/settings/theme", "theme=neon")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if moduletest.Cookie(rr, theme.CookieName) != nil {
		t.Fatalf("unexpected theme cookie")
	}
}

func TestLanguageStoresCookie(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodPost, "/settings/language", "lang=pt-BR&return_to=%2Fgoals")
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/goals" {
		t.Fatalf("status = %d location = %q, want 303 /goals", rr.Code, rr.Header().Get("Location"))
	}
	cookie := moduletest.Cookie(rr, i18n.LangCookieName)
	if cookie == nil || cookie.Value != "pt-BR" {
		t.Fatalf("lang cookie = %v, want pt-BR", cookie)
	}
}

func TestLanguageRejectsMalformedTag(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	for _, form := range []string{"lang=", "lang=%40%40"} {
		rr := moduletest.Do(h, http.MethodPost, "/settings/language", form)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s status = %d, want %d", form, rr.Code, http.StatusBadRequest)
		}
	}
}

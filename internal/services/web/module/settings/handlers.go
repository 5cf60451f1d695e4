package settings

import (
	"net/http"

	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/platform/flash"
	"github.com/louisbranch/questboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/questboard/internal/services/web/platform/i18n"
	"github.com/louisbranch/questboard/internal/services/web/platform/theme"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleTheme(w http.ResponseWriter, r *http.Request) {
	selected, ok := theme.Parse(r.PostFormValue("theme"))
	if !ok {
		http.Error(w, "unknown theme", http.StatusBadRequest)
		return
	}
	theme.Write(w, r, selected)
	flash.Write(w, r, flash.Info("toast.theme_updated"))
	httpx.Redirect(w, r, httpx.SafeRedirectTarget(r.PostFormValue("return_to"), routepath.Goals))
}

func (h handlers) handleLanguage(w http.ResponseWriter, r *http.Request) {
	tag, ok := h.deps.Renderer.Languages().Parse(r.PostFormValue("lang"))
	if !ok {
		http.Error(w, "unsupported language", http.StatusBadRequest)
		return
	}
	i18n.SetLanguageCookie(w, tag)
	httpx.Redirect(w, r, httpx.SafeRedirectTarget(r.PostFormValue("return_to"), routepath.Goals))
}

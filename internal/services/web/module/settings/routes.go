package settings

import (
	"net/http"

	"github.com/louisbranch/questboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.SettingsTheme, h.handleTheme)
	mux.HandleFunc(http.MethodPost+" "+routepath.SettingsLanguage, h.handleLanguage)
	mux.HandleFunc(http.MethodGet+" "+routepath.SettingsTheme, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.SettingsLanguage, httpx.MethodNotAllowed(http.MethodPost))
}

package goals

import (
	"net/http"

	"github.com/louisbranch/questboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Goals, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.GoalsPrefix+"{$}", h.redirectRoot)
	mux.HandleFunc(http.MethodPost+" "+routepath.GoalFavoritePattern, h.handleToggleFavorite)
	mux.HandleFunc(http.MethodGet+" "+routepath.GoalFavoritePattern, httpx.MethodNotAllowed(http.MethodPost))
}

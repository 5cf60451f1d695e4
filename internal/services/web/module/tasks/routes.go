package tasks

import (
	"net/http"

	"github.com/louisbranch/questboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Tasks, h.handleBoard)
	mux.HandleFunc(http.MethodGet+" "+routepath.TasksPrefix+"{$}", h.redirectRoot)
	mux.HandleFunc(http.MethodPost+" "+routepath.TaskCompletePattern, h.handleComplete)
	mux.HandleFunc(http.MethodPost+" "+routepath.TaskResetPattern, h.handleReset)
	mux.HandleFunc(http.MethodPost+" "+routepath.TasksReroll, h.handleReroll)
	for _, pattern := range []string{routepath.TaskCompletePattern, routepath.TaskResetPattern, routepath.TasksReroll} {
		mux.HandleFunc(http.MethodGet+" "+pattern, httpx.MethodNotAllowed(http.MethodPost))
	}
}

package goals

import (
	"net/http"
	"strings"

	"github.com/louisbranch/questboard/internal/progress/filter"
	apperrors "github.com/louisbranch/questboard/internal/platform/errors"
	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/platform/flash"
	"github.com/louisbranch/questboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/questboard/internal/services/web/platform/pagerender"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
	"github.com/louisbranch/questboard/internal/services/web/templates"
)

var favoritesFilter = filter.MustParse(filter.Favorites)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) redirectRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Goals, http.StatusFound)
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	view := h.deps.Renderer.View(w, r)
	favorites := strings.TrimSpace(r.URL.Query().Get("filter")) == routepath.FilterFavorites
	f := filter.Filter{}
	if favorites {
		f = favoritesFilter
	}

	goals, err := h.deps.Tracker.Goals(r.Context(), f)
	if err != nil {
		h.deps.Logf("list goals failed: %v", err)
		_ = h.deps.Renderer.WriteError(w, r, view, routepath.Goals, err)
		return
	}
	if err := h.deps.Renderer.Write(w, r, view, pagerender.Page{
		TitleKey:  "nav.goals",
		ActiveTab: routepath.Goals,
		Body:      templates.GoalsPage(templates.GoalsView{Favorites: favorites, Goals: goals, Loc: view.Loc}),
	}); err != nil {
		h.deps.Logf("render goals failed: %v", err)
	}
}

func (h handlers) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	target := httpx.SafeRedirectTarget(r.PostFormValue("return_to"), routepath.Goals)
	goal, err := h.deps.Tracker.ToggleFavorite(r.Context(), r.PathValue("goalID"))
	if err != nil {
		h.deps.Logf("toggle favorite goal_id=%s failed: %v", r.PathValue("goalID"), err)
		flash.Write(w, r, flash.Error(apperrors.MessageKey(err)))
		httpx.Redirect(w, r, target)
		return
	}
	if goal.Favorite {
		flash.Write(w, r, flash.Success("toast.favorite_added"))
	} else {
		flash.Write(w, r, flash.Info("toast.favorite_removed"))
	}
	httpx.Redirect(w, r, target)
}

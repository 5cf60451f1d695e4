package tasks

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/questboard/internal/platform/errors"
	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/platform/flash"
	"github.com/louisbranch/questboard/internal/services/web/platform/httpx"
	"github.com/louisbranch/questboard/internal/services/web/platform/pagerender"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
	"github.com/louisbranch/questboard/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) redirectRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Tasks, http.StatusFound)
}

func (h handlers) handleBoard(w http.ResponseWriter, r *http.Request) {
	view := h.deps.Renderer.View(w, r)
	board, err := h.deps.Tracker.Board(r.Context())
	if err != nil {
		h.deps.Logf("load board failed: %v", err)
		_ = h.deps.Renderer.WriteError(w, r, view, routepath.Tasks, err)
		return
	}
	if err := h.deps.Renderer.Write(w, r, view, pagerender.Page{
		TitleKey:  "nav.tasks",
		ActiveTab: routepath.Tasks,
		Body:      templates.TasksPage(templates.TasksView{Board: board, Loc: view.Loc}),
	}); err != nil {
		h.deps.Logf("render board failed: %v", err)
	}
}

func (h handlers) handleComplete(w http.ResponseWriter, r *http.Request) {
	slot, err := parseSlot(r)
	if err == nil {
		var goal progress.Goal
		goal, err = h.deps.Tracker.CompleteTask(r.Context(), slot)
		if err == nil {
			h.deps.Logf("task completed slot=%d goal_id=%s xp=%d", slot, goal.ID, goal.XP)
			flash.Write(w, r, flash.Success("toast.task_completed"))
		}
	}
	h.finish(w, r, "complete", err)
}

func (h handlers) handleReset(w http.ResponseWriter, r *http.Request) {
	slot, err := parseSlot(r)
	if err == nil {
		_, err = h.deps.Tracker.ResetTask(r.Context(), slot)
		if err == nil {
			flash.Write(w, r, flash.Info("toast.task_reset"))
		}
	}
	h.finish(w, r, "reset", err)
}

func (h handlers) handleReroll(w http.ResponseWriter, r *http.Request) {
	_, err := h.deps.Tracker.NewDaily(r.Context())
	if err == nil {
		flash.Write(w, r, flash.Success("toast.daily_rerolled"))
	}
	h.finish(w, r, "reroll", err)
}

// finish redirects back to the board, replacing the toast with an error
// notice when the action failed.
func (h handlers) finish(w http.ResponseWriter, r *http.Request, action string, err error) {
	if err != nil {
		h.deps.Logf("task %s failed path=%s: %v", action, r.URL.Path, err)
		flash.Write(w, r, flash.Error(apperrors.MessageKey(err)))
	}
	httpx.Redirect(w, r, routepath.Tasks)
}

func parseSlot(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("slot"))
	slot, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("slot %q: %w", raw, progress.ErrSlotOutOfRange)
	}
	return slot, nil
}

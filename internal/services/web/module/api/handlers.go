package api

import (
	"net/http"

	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/progress/filter"
	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/platform/httpx"
)

// GoalResponse is a goal with its derived threshold and progress.
type GoalResponse struct {
	progress.Goal
	RequiredXP int     `json:"required_xp"`
	Progress   float64 `json:"progress"`
}

// GoalsResponse is the body of GET /api/goals.
type GoalsResponse struct {
	Filter string         `json:"filter,omitempty"`
	Goals  []GoalResponse `json:"goals"`
}

type handlers struct {
	deps module.Dependencies
}

func newGoalResponse(goal progress.Goal) GoalResponse {
	return GoalResponse{Goal: goal, RequiredXP: goal.RequiredXP(), Progress: goal.Progress()}
}

func (h handlers) handleGoals(w http.ResponseWriter, r *http.Request) {
	f, err := filter.Parse(r.URL.Query().Get("filter"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	goals, err := h.deps.Tracker.Goals(r.Context(), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := GoalsResponse{Filter: f.String(), Goals: make([]GoalResponse, 0, len(goals))}
	for _, goal := range goals {
		resp.Goals = append(resp.Goals, newGoalResponse(goal))
	}
	_ = httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h handlers) handleGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := h.deps.Tracker.Goal(r.Context(), r.PathValue("goalID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, newGoalResponse(goal))
}

func (h handlers) handleDaily(w http.ResponseWriter, r *http.Request) {
	board, err := h.deps.Tracker.Board(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, board)
}

func (h handlers) writeError(w http.ResponseWriter, err error) {
	h.deps.Logf("api request failed: %v", err)
	_ = httpx.WriteJSONError(w, err)
}

package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/services/web/module/moduletest"
	"github.com/louisbranch/questboard/internal/services/web/platform/httpx"
)

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	return out
}

func TestGoalsFilter(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"1", "2", "3"}},
		{query: "?filter=favorite", want: []string{"2"}},
		{query: "?filter=level+%3E%3D+2", want: []string{"1", "2"}},
		{query: "?filter=NOT+favorite+AND+xp+%3C+100", want: []string{"3"}},
	}
	for _, tc := range tests {
		rr := moduletest.Do(h, http.MethodGet, "/api/goals"+tc.query, "")
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", tc.query, rr.Code, http.StatusOK)
		}
		resp := decode[GoalsResponse](t, rr.Body.Bytes())
		var got []string
		for _, goal := range resp.Goals {
			got = append(got, goal.ID)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("GET %s ids = %v, want %v", tc.query, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("GET %s ids = %v, want %v", tc.query, got, tc.want)
			}
		}
	}
}

func TestGoalsInvalidFilter(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodGet, "/api/goals?filter=colour+%3D+%22red%22", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := decode[struct {
		Error httpx.ErrorBody `json:"error"`
	}](t, rr.Body.Bytes())
	if body.Error.Code == "" {
		t.Fatalf("error code is empty")
	}
}

func TestGoalIncludesDerivedProgress(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodGet, "/api/goals/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	goal := decode[GoalResponse](t, rr.Body.Bytes())
	if goal.ID != "1" || goal.XP != 300 || goal.RequiredXP != 300 {
		t.Fatalf("goal = %+v, want id 1 xp 300 required 300", goal)
	}

	missing := moduletest.Do(h, http.MethodGet, "/api/goals/99", "")
	if missing.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d, want %d", missing.Code, http.StatusNotFound)
	}
}

func TestDailyJoinsTasksAndGoals(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t, "5", "1", "3")
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodGet, "/api/daily", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	board := decode[progress.Board](t, rr.Body.Bytes())
	if board.Total != 3 || board.Completed != 0 {
		t.Fatalf("board total/completed = %d/%d, want 3/0", board.Total, board.Completed)
	}
	if first := board.Entries[0]; first.Task.ID != "5" || first.Goal.ID != "2" {
		t.Fatalf("first entry = task %s goal %s, want task 5 goal 2", first.Task.ID, first.Goal.ID)
	}
}

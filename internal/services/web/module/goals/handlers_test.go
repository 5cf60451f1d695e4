package goals

import (
	"context"
	"net/http"
	"testing"

	"github.com/louisbranch/questboard/internal/services/web/module"
	"github.com/louisbranch/questboard/internal/services/web/module/moduletest"
	"github.com/louisbranch/questboard/internal/services/web/platform/flash"
)

func TestMountRequiresTracker(t *testing.T) {
	t.Parallel()

	if _, err := New(module.Dependencies{}).Mount(); err == nil {
		t.Fatalf("expected mount error without tracker")
	}
}

func TestListRendersAllGoals(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodGet, "/goals", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	cards := moduletest.FindAll(moduletest.Parse(t, rr.Body.String()), moduletest.HasAttr("data-goal-id"))
	if len(cards) != 3 {
		t.Fatalf("cards = %d, want 3", len(cards))
	}
	if got := moduletest.Attr(cards[1], "data-favorite"); got != "true" {
		t.Fatalf("goal 2 data-favorite = %q, want true", got)
	}
}

func TestListFavoritesOnly(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodGet, "/goals?filter=favorites", "")
	cards := moduletest.FindAll(moduletest.Parse(t, rr.Body.String()), moduletest.HasAttr("data-goal-id"))
	if len(cards) != 1 || moduletest.Attr(cards[0], "data-goal-id") != "2" {
		t.Fatalf("favorite cards = %d, want only goal 2", len(cards))
	}
}

func TestTrailingSlashRedirects(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodGet, "/goals/", "")
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/goals" {
		t.Fatalf("status = %d location = %q, want 302 /goals", rr.Code, rr.Header().Get("Location"))
	}
}

func TestToggleFavoriteFlipsAndRedirects(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodPost, "/goals/1/favorite", "return_to=%2Fgoals%3Ffilter%3Dfavorites")
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/goals?filter=favorites" {
		t.Fatalf("Location = %q, want /goals?filter=favorites", got)
	}
	if notice := moduletest.Flash(t, rr); notice.Kind != flash.KindSuccess || notice.Key != "toast.favorite_added" {
		t.Fatalf("flash = %+v, want success toast.favorite_added", notice)
	}
	goal, err := env.Store.GetGoal(context.Background(), "1")
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	if !goal.Favorite {
		t.Fatalf("goal 1 favorite = false, want true")
	}
}

func TestToggleFavoriteRejectsOffsiteReturn(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodPost, "/goals/2/favorite", "return_to=https%3A%2F%2Fevil.test%2F")
	if got := rr.Header().Get("Location"); got != "/goals" {
		t.Fatalf("Location = %q, want /goals", got)
	}
	if notice := moduletest.Flash(t, rr); notice.Key != "toast.favorite_removed" {
		t.Fatalf("flash key = %q, want toast.favorite_removed", notice.Key)
	}
}

func TestToggleFavoriteUnknownGoal(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodPost, "/goals/99/favorite", "")
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if notice := moduletest.Flash(t, rr); notice.Kind != flash.KindError || notice.Key != "error.not_found" {
		t.Fatalf("flash = %+v, want error error.not_found", notice)
	}
}

func TestFavoriteRouteRejectsGet(t *testing.T) {
	t.Parallel()

	env := moduletest.New(t)
	h := moduletest.Handler(t, New(env.Deps))

	rr := moduletest.Do(h, http.MethodGet, "/goals/1/favorite", "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

// GoalsView is the goals tab content.
type GoalsView struct {
	Favorites bool
	Goals     []progress.Goal
	Loc       Localizer
}

// GoalsPage renders the goal cards with the all/favorites switch.
func GoalsPage(view GoalsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		loc := view.Loc

		w.raw(`<section id="goals"><h2>`)
		w.text(T(loc, "goals.heading"))
		w.raw(`</h2><p class="goal-filter">`)
		writeTab(w, routepath.Goals, T(loc, "goals.filter.all"), !view.Favorites)
		writeTab(w, routepath.GoalsFavorites(), T(loc, "goals.filter.favorites"), view.Favorites)
		w.raw(`</p>`)

		if len(view.Goals) == 0 {
			w.raw(`<p class="empty">`)
			w.text(T(loc, "goals.empty"))
			w.raw(`</p>`)
		}
		for _, goal := range view.Goals {
			writeGoal(w, loc, goal, view.Favorites)
		}
		w.raw(`</section>`)
		return w.err
	})
}

func writeGoal(w *writer, loc Localizer, goal progress.Goal, favoritesView bool) {
	w.raw(`<article class="card goal"`, attr("data-goal-id", goal.ID), attr("data-favorite", strconv.FormatBool(goal.Favorite)), ">")
	w.raw(`<h3>`)
	w.text(goal.Title)
	w.raw(`</h3>`)
	if goal.Description != "" {
		w.raw(`<p>`)
		w.text(goal.Description)
		w.raw(`</p>`)
	}
	w.raw(`<p class="level">`)
	w.text(T(loc, "goals.level", goal.Level))
	w.raw(`</p>`)
	w.raw(`<progress`, attr("value", strconv.Itoa(min(goal.XP, goal.RequiredXP()))), attr("max", strconv.Itoa(goal.RequiredXP())), `></progress>`)
	w.raw(`<p class="xp">`)
	w.text(T(loc, "goals.xp", goal.XP, goal.RequiredXP()))
	w.raw(`</p>`)

	returnTo := routepath.Goals
	if favoritesView {
		returnTo = routepath.GoalsFavorites()
	}
	label := T(loc, "goals.favorite.add")
	if goal.Favorite {
		label = T(loc, "goals.favorite.remove")
	}
	w.raw(`<form method="post"`, attr("action", routepath.GoalFavorite(goal.ID)), ">")
	w.raw(`<input type="hidden" name="return_to"`, attr("value", returnTo), ">")
	w.raw(`<button type="submit" class="favorite"`, attr("aria-pressed", strconv.FormatBool(goal.Favorite)), attr("aria-label", label), ">")
	if goal.Favorite {
		w.raw("&#9733;")
	} else {
		w.raw("&#9734;")
	}
	w.raw(`</button></form></article>`)
}

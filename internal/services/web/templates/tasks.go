package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

// TasksView is the tasks tab content.
type TasksView struct {
	Board progress.Board
	Loc   Localizer
}

// TasksPage renders the daily board.
func TasksPage(view TasksView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		loc := view.Loc
		board := view.Board

		w.raw(`<section id="tasks"><h2>`)
		w.text(T(loc, "tasks.heading"))
		w.raw(`</h2><p class="daily-progress">`)
		w.text(T(loc, "tasks.progress", board.Completed, board.Total))
		w.raw(`</p>`)

		if len(board.Entries) == 0 {
			w.raw(`<p class="empty">`)
			w.text(T(loc, "tasks.empty"))
			w.raw(`</p>`)
		} else {
			w.raw(`<ol class="daily">`)
			for _, entry := range board.Entries {
				writeEntry(w, loc, entry)
			}
			w.raw(`</ol>`)
		}

		w.raw(`<form method="post"`, attr("action", routepath.TasksReroll), `><button type="submit" class="reroll">`)
		w.text(T(loc, "tasks.reroll"))
		w.raw(`</button></form></section>`)
		return w.err
	})
}

func writeEntry(w *writer, loc Localizer, entry progress.BoardEntry) {
	class := "card task"
	if entry.Completed {
		class = classes(class, "completed")
	}
	w.raw(`<li`, attr("class", class), attr("data-slot", strconv.Itoa(entry.Slot)), attr("data-task-id", entry.Task.ID), attr("data-completed", strconv.FormatBool(entry.Completed)), ">")
	w.raw(`<h3>`)
	w.text(entry.Task.Title)
	w.raw(`</h3><p class="goal">`)
	w.text(entry.Goal.Title)
	w.raw(`</p><p class="reward">`)
	w.text(T(loc, "tasks.reward", entry.Task.XP))
	w.raw(`</p>`)

	if entry.Completed {
		w.raw(`<span class="status">`)
		w.text(T(loc, "tasks.completed"))
		w.raw(`</span>`)
	} else {
		w.raw(`<form method="post" class="inline"`, attr("action", routepath.TaskComplete(entry.Slot)), `><button type="submit" class="complete">`)
		w.text(T(loc, "tasks.complete"))
		w.raw(`</button></form>`)
	}
	w.raw(`<form method="post" class="inline"`, attr("action", routepath.TaskReset(entry.Slot)), `><button type="submit" class="reset">`)
	w.text(T(loc, "tasks.reset"))
	w.raw(`</button></form></li>`)
}

package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/questboard/internal/services/web/platform/i18n"
	"github.com/louisbranch/questboard/internal/services/web/platform/theme"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

// Toast is a one-time notice shown above the page body.
type Toast struct {
	Kind    string
	Message string
}

// LayoutData is the page chrome around a tab body.
type LayoutData struct {
	Lang        string
	Title       string
	ActiveTab   string
	CurrentPath string
	Theme       theme.Theme
	Languages   []i18n.Option
	Toast       *Toast
	Loc         Localizer
}

// Layout wraps the children component in the dashboard chrome.
func Layout(data LayoutData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		loc := data.Loc
		appTitle := T(loc, "app.title")
		title := appTitle
		if data.Title != "" {
			title = data.Title + " · " + appTitle
		}
		currentTheme := data.Theme
		if currentTheme == "" {
			currentTheme = theme.Default
		}

		w.raw("<!DOCTYPE html><html", attr("lang", data.Lang), attr("data-theme", string(currentTheme)))
		if class := currentTheme.HTMLClass(); class != "" {
			w.raw(attr("class", class))
		}
		w.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.raw(`<meta name="color-scheme"`, attr("content", currentTheme.ColorScheme()), ">")
		w.raw("<title>")
		w.text(title)
		w.raw(`</title><link rel="stylesheet"`, attr("href", routepath.Stylesheet), `></head><body>`)

		w.raw(`<header><h1>`)
		w.text(appTitle)
		w.raw(`</h1><p>`)
		w.text(T(loc, "app.tagline"))
		w.raw(`</p>`)
		writeThemeForm(w, data, currentTheme)
		writeLanguageForm(w, data)
		w.raw(`</header>`)

		w.raw(`<nav>`)
		writeTab(w, routepath.Goals, T(loc, "nav.goals"), data.ActiveTab == routepath.Goals)
		writeTab(w, routepath.Tasks, T(loc, "nav.tasks"), data.ActiveTab == routepath.Tasks)
		w.raw(`</nav>`)

		if data.Toast != nil && data.Toast.Message != "" {
			w.raw(`<div role="status"`, attr("class", classes("toast", "toast-"+data.Toast.Kind)), attr("data-toast", data.Toast.Kind), ">")
			w.text(data.Toast.Message)
			w.raw(`</div>`)
		}

		w.raw(`<main>`)
		if w.err != nil {
			return w.err
		}
		if err := templ.GetChildren(ctx).Render(ctx, out); err != nil {
			return err
		}
		w.raw(`</main></body></html>`)
		return w.err
	})
}

func writeTab(w *writer, href, label string, active bool) {
	w.raw(`<a`, attr("href", href))
	if active {
		w.raw(` aria-current="page"`)
	}
	w.raw(">")
	w.text(label)
	w.raw(`</a>`)
}

func writeThemeForm(w *writer, data LayoutData, current theme.Theme) {
	w.raw(`<form method="post" class="inline theme-toggle"`, attr("action", routepath.SettingsTheme), ">")
	w.raw(`<input type="hidden" name="return_to"`, attr("value", data.CurrentPath), ">")
	w.raw(`<span>`)
	w.text(T(data.Loc, "theme.label"))
	w.raw(`</span> `)
	for _, option := range theme.All() {
		w.raw(`<button type="submit" name="theme"`, attr("value", string(option)))
		if option == current {
			w.raw(` aria-pressed="true"`)
		} else {
			w.raw(` aria-pressed="false"`)
		}
		w.raw(">")
		w.text(T(data.Loc, "theme."+string(option)))
		w.raw(`</button>`)
	}
	w.raw(`</form> `)
}

func writeLanguageForm(w *writer, data LayoutData) {
	if len(data.Languages) < 2 {
		return
	}
	w.raw(`<form method="post" class="inline language-picker"`, attr("action", routepath.SettingsLanguage), ">")
	w.raw(`<input type="hidden" name="return_to"`, attr("value", data.CurrentPath), ">")
	for _, option := range data.Languages {
		w.raw(`<button type="submit" name="lang"`, attr("value", option.Tag))
		if option.Active {
			w.raw(` aria-pressed="true"`)
		}
		w.raw(">")
		w.text(option.Label)
		w.raw(`</button>`)
	}
	w.raw(`</form>`)
}

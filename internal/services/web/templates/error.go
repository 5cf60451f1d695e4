package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/questboard/internal/services/web/routepath"
)

// ErrorPage renders a failed page body with a link back to the goals tab.
func ErrorPage(status int, message string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<section class="card error"`, attr("data-status", strconv.Itoa(status)), `><p>`)
		w.text(message)
		w.raw(`</p><a`, attr("href", routepath.Goals), ">")
		w.text(T(loc, "nav.goals"))
		w.raw(`</a></section>`)
		return w.err
	})
}

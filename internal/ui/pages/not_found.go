package pages

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bigkaa/portfolio-site/internal/ui/i18n"
)

// NotFound — локализованная страница 404. Не индексируется.
func NotFound(p Page) templ.Component {
	return component(func(ctx context.Context) g.Node {
		meta := Meta{
			Title:       i18n.T(ctx, "common.not_found.title"),
			Description: i18n.T(ctx, "common.not_found.text"),
			NoIndex:     true,
		}
		return layout(ctx, p, meta,
			h.Section(
				h.Class("section"),
				h.Div(
					h.Class("container"),
					h.H1(g.Text(i18n.T(ctx, "common.not_found.heading"))),
					h.P(g.Text(i18n.T(ctx, "common.not_found.text"))),
					h.A(h.Class("button"), h.Href(p.href("/")), g.Text(i18n.T(ctx, "common.not_found.back"))),
				),
			),
		)
	})
}

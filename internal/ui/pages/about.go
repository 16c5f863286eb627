package pages

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bigkaa/portfolio-site/internal/ui/i18n"
)

// aboutValues — ключи ценностей студии в порядке вывода.
var aboutValues = []string{"quality", "openness", "care"}

// About — страница "О нас".
func About(p Page) templ.Component {
	return component(func(ctx context.Context) g.Node {
		meta := Meta{
			Title:       i18n.T(ctx, "about_page.meta.title"),
			Description: i18n.T(ctx, "about_page.meta.summary"),
		}
		email := p.Content.Site.Email

		return layout(ctx, p, meta,
			h.Section(
				h.Class("section"),
				h.Div(
					h.Class("container"),
					h.H1(Animate(FadeUp), g.Text(i18n.T(ctx, "about_page.heading"))),
					h.P(h.Class("section__lead"), g.Text(i18n.T(ctx, "about_page.lead"))),

					h.H2(Animate(FadeIn), g.Text(i18n.T(ctx, "about_page.mission_heading"))),
					h.P(g.Text(i18n.T(ctx, "about_page.mission_text"))),

					h.H2(Animate(FadeIn), g.Text(i18n.T(ctx, "about_page.values_heading"))),
					h.Ul(
						h.Class("grid"),
						g.Map(aboutValues, func(key string) g.Node {
							return h.Li(h.Class("card"), Animate(FadeUp), g.Text(i18n.T(ctx, "about_page.values."+key)))
						}),
					),

					h.H2(Animate(FadeIn), g.Text(i18n.T(ctx, "about_page.contact_heading"))),
					h.P(g.Text(i18n.T(ctx, "about_page.contact_text"))),
					g.If(email != "", h.A(h.Class("button"), h.Href("mailto:"+email), g.Text(email))),
				),
			),
		)
	})
}

package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bigkaa/portfolio-site/internal/content"
	"github.com/bigkaa/portfolio-site/internal/ui/i18n"
)

// Portfolio — список проектов с картинками-заглушками.
func Portfolio(p Page) templ.Component {
	return component(func(ctx context.Context) g.Node {
		meta := Meta{
			Title:       i18n.T(ctx, "portfolio.meta.title"),
			Description: i18n.T(ctx, "portfolio.meta.summary"),
		}

		cards := make(g.Group, 0, len(p.Content.Projects))
		for i, project := range p.Content.Projects {
			cards = append(cards, projectCard(ctx, project, i))
		}

		return layout(ctx, p, meta,
			h.Section(
				h.Class("section"),
				h.Div(
					h.Class("container"),
					h.H1(Animate(FadeUp), g.Text(i18n.T(ctx, "portfolio.heading"))),
					h.P(h.Class("section__lead"), g.Text(i18n.T(ctx, "portfolio.lead"))),
					h.Div(h.Class("grid"), cards),
				),
			),
		)
	})
}

func projectCard(ctx context.Context, project content.Project, i int) g.Node {
	name := i18n.T(ctx, project.NameKey())

	return h.Article(
		h.Class("card"),
		h.ID("project-"+project.Slug),
		AnimateStagger(FadeUp, i),
		PlaceholderImage(project.Image.Width, project.Image.Height, name, name),
		h.H3(g.Text(name)),
		h.P(g.Text(i18n.T(ctx, project.TextKey()))),
		h.P(
			h.Class("section__lead"),
			g.Text(i18n.T(ctx, "portfolio.year")+": "+strconv.Itoa(project.Year)),
		),
		h.Ul(
			h.Class("tags"),
			h.Aria("label", i18n.T(ctx, "portfolio.tags")),
			g.Map(project.Tags, func(tag string) g.Node { return h.Li(g.Text(tag)) }),
		),
	)
}

package pages

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bigkaa/portfolio-site/internal/content"
	"github.com/bigkaa/portfolio-site/internal/ui/i18n"
	"github.com/bigkaa/portfolio-site/internal/ui/widget"
)

// Home — главная: hero, услуги и отзывы.
// reviews может быть nil, если виджет отзывов выключен: секция не выводится.
func Home(p Page, reviews *widget.ReviewWidget) templ.Component {
	return component(func(ctx context.Context) g.Node {
		meta := Meta{
			Title:       i18n.T(ctx, "common.meta.home_title"),
			Description: i18n.T(ctx, "common.meta.home_summary"),
		}
		body := g.Group{
			hero(ctx, p),
			services(ctx, p.Content.Services),
		}
		if reviews != nil {
			body = append(body, reviewsSection(ctx, reviews))
		}
		return layout(ctx, p, meta, body...)
	})
}

func hero(ctx context.Context, p Page) g.Node {
	return h.Section(
		h.Class("hero"),
		h.Div(
			h.Class("container"),
			h.H1(Animate(FadeUp), g.Text(i18n.T(ctx, "common.hero.heading"))),
			h.P(AnimateStagger(FadeUp, 1), g.Text(i18n.T(ctx, "common.hero.lead"))),
			h.Div(
				AnimateStagger(FadeIn, 2),
				h.A(h.Class("button"), h.Href(p.href("/portfolio")), g.Text(i18n.T(ctx, "common.hero.cta_primary"))),
				h.A(h.Class("button button--ghost"), h.Href(p.href("/about")), g.Text(i18n.T(ctx, "common.hero.cta_secondary"))),
			),
		),
	)
}

func services(ctx context.Context, list []content.Service) g.Node {
	cards := make(g.Group, 0, len(list))
	for i, s := range list {
		cards = append(cards, h.Article(
			h.Class("card"),
			AnimateStagger(FadeUp, i),
			h.Span(h.Class("card__icon"), h.Aria("hidden", "true"), g.Text(s.Icon)),
			h.H3(g.Text(i18n.T(ctx, s.NameKey()))),
			h.P(g.Text(i18n.T(ctx, s.TextKey()))),
		))
	}

	return h.Section(
		h.ID("services"),
		h.Class("section"),
		h.Div(
			h.Class("container"),
			h.H2(Animate(FadeUp), g.Text(i18n.T(ctx, "common.services.heading"))),
			h.P(h.Class("section__lead"), g.Text(i18n.T(ctx, "common.services.lead"))),
			h.Div(h.Class("grid"), cards),
		),
	)
}

// reviewsSection — контейнер, который заполняет внешний скрипт платформы виджетов.
func reviewsSection(ctx context.Context, reviews *widget.ReviewWidget) g.Node {
	return h.Section(
		h.ID("reviews"),
		h.Class("section"),
		h.Div(
			h.Class("container"),
			h.H2(Animate(FadeUp), g.Text(i18n.T(ctx, "common.reviews.heading"))),
			h.P(h.Class("section__lead"), g.Text(i18n.T(ctx, "common.reviews.lead"))),
			h.Div(
				h.Class(reviews.ContainerClass()),
				g.Attr("data-elfsight-app-lazy"),
				h.Data("instance", reviews.InstanceID()),
				h.P(h.Class("section__lead"), g.Text(i18n.T(ctx, "common.reviews.loading"))),
			),
		),
	)
}

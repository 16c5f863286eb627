package pages

import (
	"context"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bigkaa/portfolio-site/internal/locale"
	"github.com/bigkaa/portfolio-site/internal/ui/i18n"
)

// SetLanguagePath — обработчик переключения языка без JavaScript.
const SetLanguagePath = "/set-language"

// navItem — пункт основной навигации.
type navItem struct {
	Path string
	Key  string
}

var navItems = []navItem{
	{Path: "/", Key: "common.nav.home"},
	{Path: "/portfolio", Key: "common.nav.portfolio"},
	{Path: "/about", Key: "common.nav.about"},
}

func navbar(ctx context.Context, p Page) g.Node {
	return h.Header(
		h.Class("navbar"),
		h.Nav(
			h.Class("container"),
			h.A(h.Class("navbar__brand"), h.Href(p.href("/")), g.Text(p.Content.Site.Brand)),
			h.Ul(
				h.Class("navbar__links"),
				g.Map(navItems, func(item navItem) g.Node {
					return h.Li(h.A(
						h.Href(p.href(item.Path)),
						g.If(item.Path == p.Path, h.Aria("current", "page")),
						g.Text(i18n.T(ctx, item.Key)),
					))
				}),
			),
			LocaleSwitcher(ctx, p.Lang, p.href(p.Path)),
		),
	)
}

// LocaleSwitcher — переключатель языка: ссылка на текущую страницу в каждой
// поддерживаемой локали. Текущая локаль помечена aria-current.
// Форма дублирует ссылки для браузеров без JavaScript.
func LocaleSwitcher(ctx context.Context, current locale.Code, currentPath string) g.Node {
	label := i18n.T(ctx, "common.nav.language")
	locales := locale.Supported()

	return h.Div(
		h.Class("locale"),
		h.Ul(
			h.Class("locale-switcher"),
			h.Aria("label", label),
			g.Map(locales, func(l locale.Locale) g.Node {
				return h.Li(h.A(
					h.Href(locale.Switch(currentPath, string(l.Code))),
					g.Attr("hreflang", string(l.Code)),
					h.Lang(string(l.Code)),
					g.If(l.Code == current, h.Aria("current", "true")),
					h.Span(h.Aria("hidden", "true"), g.Text(l.Flag)),
					g.Text(" "+l.Name),
				))
			}),
		),
		h.Form(
			h.Method("post"),
			h.Action(SetLanguagePath),
			h.Input(h.Type("hidden"), h.Name("path"), h.Value(currentPath)),
			h.Select(
				h.Name("lang"),
				h.Aria("label", label),
				g.Map(locales, func(l locale.Locale) g.Node {
					return h.Option(
						h.Value(string(l.Code)),
						g.If(l.Code == current, h.Selected()),
						g.Text(l.Flag+" "+l.Name),
					)
				}),
			),
			h.Button(h.Type("submit"), g.Text(i18n.T(ctx, "common.nav.switch"))),
		),
	)
}

// Paths возвращает логические пути страниц сайта (без префикса локали).
func Paths() []string {
	out := make([]string, 0, len(navItems))
	for _, item := range navItems {
		out = append(out, item.Path)
	}
	return out
}

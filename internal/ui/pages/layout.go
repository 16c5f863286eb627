package pages

import (
	"context"
	"maps"
	"slices"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bigkaa/portfolio-site/internal/content"
	"github.com/bigkaa/portfolio-site/internal/locale"
	"github.com/bigkaa/portfolio-site/internal/ui/document"
	"github.com/bigkaa/portfolio-site/internal/ui/i18n"
	"github.com/bigkaa/portfolio-site/internal/ui/widget"
)

// Meta — заголовок и описание страницы для <head> и превью в соцсетях.
type Meta struct {
	Title       string
	Description string
	// NoIndex — страница не индексируется и не имеет альтернатив (404).
	NoIndex bool
}

// reporterScript отправляет событие загрузки внешнего скрипта на сервер.
// Вызывается из onload/onerror скрипта виджета.
const reporterScript = `function ` + widget.ReporterFunc + `(el, event) {
  var body = JSON.stringify({widget: el.dataset.widget, instance: el.dataset.instance, event: event});
  if (navigator.sendBeacon) {
    navigator.sendBeacon("` + widget.EventsPath + `", new Blob([body], {type: "application/json"}));
    return;
  }
  fetch("` + widget.EventsPath + `", {method: "POST", headers: {"Content-Type": "application/json"}, body: body, keepalive: true});
}`

// layout — общий каркас страницы: head, навигация, main, footer, скрипты body.
func layout(ctx context.Context, p Page, meta Meta, children ...g.Node) g.Node {
	site := p.Content.Site

	return h.Doctype(
		h.HTML(
			h.Lang(string(p.Lang)),
			h.Class("no-js"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(meta.Title+" | "+site.Brand)),
				h.Meta(h.Name("description"), h.Content(meta.Description)),
				g.If(meta.NoIndex, h.Meta(h.Name("robots"), h.Content("noindex"))),
				g.If(!meta.NoIndex, alternates(p)),
				socialMeta(p, meta),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				h.Script(h.Src("/static/js/site.js"), h.Defer()),
				h.Script(g.Raw(reporterScript)),
			),
			h.Body(
				navbar(ctx, p),
				h.Main(h.ID("main"), g.Group(children)),
				footer(ctx, p),
				bodyScripts(p.Doc),
			),
		),
	)
}

// alternates — canonical и hreflang-ссылки на ту же страницу во всех локалях.
func alternates(p Page) g.Node {
	nodes := g.Group{
		h.Link(h.Rel("canonical"), h.Href(p.absURL(p.href(p.Path)))),
	}
	for _, l := range locale.Supported() {
		nodes = append(nodes, h.Link(
			h.Rel("alternate"),
			g.Attr("hreflang", string(l.Code)),
			h.Href(p.absURL(locale.LocalizePath(p.Path, l.Code))),
		))
	}
	nodes = append(nodes, h.Link(
		h.Rel("alternate"),
		g.Attr("hreflang", "x-default"),
		h.Href(p.absURL(locale.LocalizePath(p.Path, locale.Default))),
	))
	return nodes
}

// socialMeta — Open Graph и Twitter Card.
func socialMeta(p Page, meta Meta) g.Node {
	site := p.Content.Site
	image := p.absURL(site.SocialImage)

	property := func(name, value string) g.Node {
		return h.Meta(g.Attr("property", name), h.Content(value))
	}
	twitter := func(name, value string) g.Node {
		return h.Meta(h.Name(name), h.Content(value))
	}

	return g.Group{
		property("og:type", "website"),
		property("og:site_name", site.Brand),
		property("og:title", meta.Title),
		property("og:description", meta.Description),
		property("og:url", p.absURL(p.href(p.Path))),
		property("og:locale", string(p.Lang)),
		g.If(image != "", property("og:image", image)),
		twitter("twitter:card", "summary_large_image"),
		twitter("twitter:title", meta.Title),
		twitter("twitter:description", meta.Description),
		g.If(image != "", twitter("twitter:image", image)),
	}
}

// bodyScripts выводит внешние скрипты, прикреплённые к документу, в порядке добавления.
func bodyScripts(doc *document.Document) g.Node {
	if doc == nil {
		return nil
	}
	return g.Map(doc.Scripts(), func(s *document.Script) g.Node {
		attrs := g.Group{h.ID(s.ID), h.Src(s.Src), g.If(s.Async, h.Async())}
		for _, name := range slices.Sorted(maps.Keys(s.Attrs)) {
			attrs = append(attrs, g.Attr(name, s.Attrs[name]))
		}
		return h.Script(attrs)
	})
}

func footer(ctx context.Context, p Page) g.Node {
	c := p.Content

	return h.Footer(
		h.Class("footer"),
		h.Div(
			h.Class("container"),
			h.P(g.Text(i18n.Td(ctx, "common.footer.rights", map[string]any{
				"Year":  time.Now().Year(),
				"Brand": c.Site.Brand,
			}))),
			h.Ul(
				h.Class("footer__links"),
				g.If(c.Site.Email != "", h.Li(
					h.A(h.Href("mailto:"+c.Site.Email), g.Text(i18n.T(ctx, "common.footer.contact"))),
				)),
				g.Map(c.Contacts, func(ct content.Contact) g.Node {
					return h.Li(h.A(h.Href(ct.URL), h.Rel("noopener"), h.Target("_blank"), g.Text(ct.Name)))
				}),
			),
		),
	)
}

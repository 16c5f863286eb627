// Пакет pages — страницы сайта.
// Разметка строится на gomponents, наружу страницы отдаются как templ.Component:
// обработчики вызывают Render(ctx, w), язык берётся из контекста (i18n.WithLang).
package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/bigkaa/portfolio-site/internal/content"
	"github.com/bigkaa/portfolio-site/internal/locale"
	"github.com/bigkaa/portfolio-site/internal/ui/document"
)

// Page — общие данные одной отрисовки страницы.
type Page struct {
	Lang locale.Code
	// Path — логический путь без префикса локали: "/", "/portfolio", "/about".
	Path string
	// BaseURL — публичный адрес сайта без завершающего "/".
	BaseURL string
	Content *content.Content
	// Doc — body документа; внешние скрипты выводятся в конце страницы.
	Doc *document.Document
}

// href возвращает путь внутри текущей локали.
func (p Page) href(path string) string {
	return locale.LocalizePath(path, p.Lang)
}

// absURL превращает путь сайта в абсолютный URL.
func (p Page) absURL(path string) string {
	if path == "" || path[0] != '/' {
		return path
	}
	return p.BaseURL + path
}

// component оборачивает построитель узла в templ.Component.
// Узел строится при рендеринге, чтобы переводы брались из ctx запроса.
func component(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// Animation — пресет анимации появления (keyframes в static/css/site.css).
type Animation string

const (
	FadeUp Animation = "fade-up"
	FadeIn Animation = "fade-in"
)

// staggerStep — шаг задержки между элементами одной сетки, в секундах.
const staggerStep = 0.1

// Animate помечает элемент пресетом анимации.
func Animate(a Animation) g.Node {
	return h.Data("animate", string(a))
}

// AnimateStagger помечает i-й элемент сетки пресетом с нарастающей задержкой.
func AnimateStagger(a Animation, i int) g.Node {
	return g.Group{
		Animate(a),
		h.Style(fmt.Sprintf("--delay: %.1fs", float64(i)*staggerStep)),
	}
}

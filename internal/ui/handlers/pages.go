// Пакет handlers — HTTP-обработчики страниц сайта.
package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/bigkaa/portfolio-site/internal/content"
	"github.com/bigkaa/portfolio-site/internal/locale"
	"github.com/bigkaa/portfolio-site/internal/ui/document"
	"github.com/bigkaa/portfolio-site/internal/ui/i18n"
	"github.com/bigkaa/portfolio-site/internal/ui/pages"
	"github.com/bigkaa/portfolio-site/internal/ui/widget"
)

// PagesHandler — обработчик локализованных страниц.
type PagesHandler struct {
	content *content.Content
	baseURL string
	// reviews — конфигурация виджета отзывов; nil, если виджет выключен.
	reviews *widget.Config
	logger  *slog.Logger
}

// NewPagesHandler создаёт PagesHandler. reviews == nil отключает виджет отзывов.
func NewPagesHandler(c *content.Content, baseURL string, reviews *widget.Config, logger *slog.Logger) *PagesHandler {
	return &PagesHandler{
		content: c,
		baseURL: baseURL,
		reviews: reviews,
		logger:  logger.With(slog.String("component", "ui.pages")),
	}
}

// LocaleFromPath — middleware для маршрутов /{lang}/...
// Поддерживаемая локаль помещается в контекст, иначе отдаётся локализованная 404.
func (h *PagesHandler) LocaleFromPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l, ok := locale.Lookup(chi.URLParam(r, "lang"))
		if !ok {
			h.HandleNotFound(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(i18n.WithLang(r.Context(), l.Code)))
	})
}

// HandleRoot обрабатывает GET / — перенаправляет на главную в определённой локали.
func (h *PagesHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	lang := i18n.LangFromContext(r.Context())
	http.Redirect(w, r, locale.LocalizePath("/", lang), http.StatusFound)
}

// HandleHome обрабатывает GET /{lang}/.
// Виджет отзывов монтируется в документ на время рендеринга и снимается после.
func (h *PagesHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	page := h.page(r, "/")

	var reviews *widget.ReviewWidget
	if h.reviews != nil {
		reviews = widget.NewReviewWidget(*h.reviews, h.logger)
		reviews.Mount(page.Doc)
		defer reviews.Unmount()
	}

	h.render(w, r, http.StatusOK, pages.Home(page, reviews))
}

// HandlePortfolio обрабатывает GET /{lang}/portfolio.
func (h *PagesHandler) HandlePortfolio(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pages.Portfolio(h.page(r, "/portfolio")))
}

// HandleAbout обрабатывает GET /{lang}/about.
func (h *PagesHandler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pages.About(h.page(r, "/about")))
}

// HandleNotFound — локализованная страница 404.
// Язык берётся из префикса пути, если он поддерживается, иначе из контекста.
func (h *PagesHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code, rest, ok := locale.SplitPath(r.URL.Path)
	if !ok {
		code = i18n.LangFromContext(ctx)
	}
	r = r.WithContext(i18n.WithLang(ctx, code))

	page := h.page(r, rest)
	h.render(w, r, http.StatusNotFound, pages.NotFound(page))
}

// page собирает данные страницы для текущего запроса.
func (h *PagesHandler) page(r *http.Request, path string) pages.Page {
	return pages.Page{
		Lang:    i18n.LangFromContext(r.Context()),
		Path:    path,
		BaseURL: h.baseURL,
		Content: h.content,
		Doc:     document.New(),
	}
}

// render рендерит страницу в буфер и отдаёт её с указанным статусом.
func (h *PagesHandler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		h.logger.Error("Ошибка рендеринга страницы",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		http.Error(w, "Ошибка рендеринга страницы", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", string(i18n.LangFromContext(r.Context())))
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

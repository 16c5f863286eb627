// seo.go — robots.txt и sitemap.xml.
package handlers

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bigkaa/portfolio-site/internal/locale"
	"github.com/bigkaa/portfolio-site/internal/ui/pages"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

// urlSet — корневой элемент sitemap.
type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemapURL — страница в одной локали с альтернативами во всех остальных.
type sitemapURL struct {
	Loc        string         `xml:"loc"`
	Alternates []alternateURL `xml:"xhtml:link"`
}

type alternateURL struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// SEOHandler — обработчик robots.txt и sitemap.xml.
type SEOHandler struct {
	baseURL string
	logger  *slog.Logger
}

// NewSEOHandler создаёт SEOHandler.
func NewSEOHandler(baseURL string, logger *slog.Logger) *SEOHandler {
	return &SEOHandler{
		baseURL: baseURL,
		logger:  logger.With(slog.String("component", "ui.seo")),
	}
}

// HandleRobots обрабатывает GET /robots.txt.
func (h *SEOHandler) HandleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", h.baseURL)
}

// HandleSitemap обрабатывает GET /sitemap.xml: каждая страница в каждой локали.
func (h *SEOHandler) HandleSitemap(w http.ResponseWriter, _ *http.Request) {
	body, err := xml.MarshalIndent(h.sitemap(), "", "  ")
	if err != nil {
		h.logger.Error("Ошибка формирования sitemap", slog.String("error", err.Error()))
		http.Error(w, "Ошибка формирования sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(body)
}

func (h *SEOHandler) sitemap() urlSet {
	set := urlSet{XMLNS: sitemapNS, XHTML: xhtmlNS}
	codes := locale.Codes()

	for _, path := range pages.Paths() {
		alternates := make([]alternateURL, 0, len(codes)+1)
		for _, code := range codes {
			alternates = append(alternates, alternateURL{
				Rel:      "alternate",
				Hreflang: string(code),
				Href:     h.baseURL + locale.LocalizePath(path, code),
			})
		}
		alternates = append(alternates, alternateURL{
			Rel:      "alternate",
			Hreflang: "x-default",
			Href:     h.baseURL + locale.LocalizePath(path, locale.Default),
		})

		for _, code := range codes {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        h.baseURL + locale.LocalizePath(path, code),
				Alternates: alternates,
			})
		}
	}
	return set
}

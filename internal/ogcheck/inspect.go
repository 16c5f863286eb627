package ogcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxPageSize — сколько байт страницы читается при проверке.
const maxPageSize = 2 << 20

// ErrUnsupportedURL — проверять можно только абсолютные http/https URL.
var ErrUnsupportedURL = errors.New("ogcheck: нужен абсолютный http(s) URL")

// MetaTag — мета-тег превью (og:* или twitter:*).
type MetaTag struct {
	Key     string
	Content string
}

// Inspect загружает страницу и возвращает её og:* и twitter:* мета-теги
// в порядке появления в документе.
func Inspect(ctx context.Context, client *http.Client, target, userAgent string) ([]MetaTag, error) {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, target)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("ogcheck: создание запроса: %w", err)
	}
	req.Header.Set("Accept", "text/html")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ogcheck: загрузка %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("ogcheck: %s ответил %s", target, resp.Status)
	}

	return ParseMetaTags(io.LimitReader(resp.Body, maxPageSize))
}

// ParseMetaTags разбирает HTML и собирает мета-теги превью.
// Ключ берётся из атрибута property, затем из name.
func ParseMetaTags(r io.Reader) ([]MetaTag, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("ogcheck: разбор HTML: %w", err)
	}

	var tags []MetaTag
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Meta {
			if tag, ok := previewTag(n); ok {
				tags = append(tags, tag)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return tags, nil
}

func previewTag(n *html.Node) (MetaTag, bool) {
	var property, name, content string
	for _, a := range n.Attr {
		switch strings.ToLower(a.Key) {
		case "property":
			property = a.Val
		case "name":
			name = a.Val
		case "content":
			content = a.Val
		}
	}

	key := property
	if key == "" {
		key = name
	}
	if !strings.HasPrefix(key, "og:") && !strings.HasPrefix(key, "twitter:") {
		return MetaTag{}, false
	}
	return MetaTag{Key: key, Content: content}, true
}

package pages

import (
	"fmt"
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PlaceholderURL возвращает путь SVG-заглушки размера width×height с подписью.
func PlaceholderURL(width, height int, text string) string {
	path := fmt.Sprintf("/placeholder/%dx%d.svg", width, height)
	if text == "" {
		return path
	}
	return path + "?" + url.Values{"text": {text}}.Encode()
}

// PlaceholderImage — <img> с заглушкой: явные размеры и ленивая загрузка.
func PlaceholderImage(width, height int, text, alt string) g.Node {
	return h.Img(
		h.Src(PlaceholderURL(width, height, text)),
		h.Alt(alt),
		h.Width(strconv.Itoa(width)),
		h.Height(strconv.Itoa(height)),
		h.Loading("lazy"),
		g.Attr("decoding", "async"),
	)
}

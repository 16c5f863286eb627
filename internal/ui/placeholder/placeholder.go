// Пакет placeholder — генерация SVG-заглушек для изображений
// и LRU-кэш готовых SVG с TTL.
package placeholder

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ограничения заглушки.
const (
	MaxSide    = 4000
	MaxTextLen = 64
)

var (
	// ErrInvalidSize — размер вне диапазона 1..MaxSide или некорректный формат.
	ErrInvalidSize = errors.New("placeholder: некорректный размер")
	// ErrInvalidText — подпись длиннее MaxTextLen символов.
	ErrInvalidText = errors.New("placeholder: слишком длинная подпись")
)

// Prometheus-метрики кэша.
var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ps_placeholder_cache_hits_total",
		Help: "Общее количество попаданий в кэш SVG-заглушек.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ps_placeholder_cache_misses_total",
		Help: "Общее количество промахов кэша SVG-заглушек.",
	})
)

// ParseSize разбирает размер вида "640x400".
func ParseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	width, err = strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	height, err = strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	if err := ValidateSize(width, height); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// ValidateSize проверяет, что обе стороны в диапазоне 1..MaxSide.
func ValidateSize(width, height int) error {
	if width < 1 || width > MaxSide || height < 1 || height > MaxSide {
		return fmt.Errorf("%w: %dx%d (допустимо 1..%d)", ErrInvalidSize, width, height, MaxSide)
	}
	return nil
}

// Render генерирует SVG-заглушку. Пустой text заменяется на "ШxВ".
func Render(width, height int, text string) ([]byte, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(text) > MaxTextLen {
		return nil, ErrInvalidText
	}
	if text == "" {
		text = fmt.Sprintf("%d×%d", width, height)
	}

	// Размер шрифта — примерно 1/10 меньшей стороны, но не меньше 10px.
	fontSize := max(min(width, height)/10, 10)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="%s">`,
		width, height, width, height, html.EscapeString(text))
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="#e5e7eb"/>`)
	fmt.Fprintf(&buf, `<path d="M0 0L%d %dM%d 0L0 %d" stroke="#d1d5db" stroke-width="2"/>`, width, height, width, height)
	fmt.Fprintf(&buf, `<text x="50%%" y="50%%" fill="#6b7280" font-family="system-ui,sans-serif" font-size="%d" text-anchor="middle" dominant-baseline="middle">%s</text>`,
		fontSize, html.EscapeString(text))
	buf.WriteString(`</svg>`)

	return buf.Bytes(), nil
}

// Cache — LRU-кэш готовых SVG с автоматическим TTL.
type Cache struct {
	cache *expirable.LRU[string, []byte]
}

// NewCache создаёт кэш с указанным максимальным размером и TTL.
func NewCache(maxSize int, ttl time.Duration) *Cache {
	return &Cache{cache: expirable.NewLRU[string, []byte](maxSize, nil, ttl)}
}

// Get возвращает SVG из кэша или генерирует и кэширует новый.
func (c *Cache) Get(width, height int, text string) ([]byte, error) {
	key := strconv.Itoa(width) + "|" + strconv.Itoa(height) + "|" + text
	if svg, ok := c.cache.Get(key); ok {
		cacheHitsTotal.Inc()
		return svg, nil
	}
	cacheMissesTotal.Inc()

	svg, err := Render(width, height, text)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, svg)
	return svg, nil
}

// Len возвращает количество записей в кэше.
func (c *Cache) Len() int {
	return c.cache.Len()
}

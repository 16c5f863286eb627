// Пакет ogcheck — ссылки на отладчики превью в соцсетях и чтение
// Open Graph / Twitter Card мета-тегов страницы.
package ogcheck

import (
	"fmt"
	"strings"
)

// Debugger — сервис проверки превью ссылки.
type Debugger struct {
	Name string
	// Template — шаблон ссылки, %s заменяется на закодированный URL страницы.
	Template string
}

// Debuggers — отладчики в порядке вывода.
var Debuggers = []Debugger{
	{Name: "Facebook Sharing Debugger", Template: "https://developers.facebook.com/tools/debug/?q=%s"},
	{Name: "LinkedIn Post Inspector", Template: "https://www.linkedin.com/post-inspector/inspect/%s"},
	{Name: "OpenGraph.xyz", Template: "https://www.opengraph.xyz/url/%s"},
	{Name: "Metatags.io", Template: "https://metatags.io/?url=%s"},
}

// Link — готовая ссылка на отладчик.
type Link struct {
	Name string
	URL  string
}

// Links возвращает ссылки на все отладчики для страницы target.
// Сеть не используется.
func Links(target string) []Link {
	encoded := EncodeComponent(target)
	out := make([]Link, 0, len(Debuggers))
	for _, d := range Debuggers {
		out = append(out, Link{Name: d.Name, URL: fmt.Sprintf(d.Template, encoded)})
	}
	return out
}

// EncodeComponent кодирует строку как компонент URL:
// без изменений остаются только A-Z a-z 0-9 и - _ . ! ~ * ' ( ),
// остальные байты UTF-8 записываются как %XX.
func EncodeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

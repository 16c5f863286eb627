// Пакет locale — список поддерживаемых локалей сайта и работа с локализованными путями.
// Список задаётся один раз и используется роутером, i18n, навигацией и sitemap,
// чтобы объявленные и реально поддерживаемые локали не расходились.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Code — код локали (первый сегмент URL и имя каталога переводов).
type Code string

// Поддерживаемые коды локалей.
const (
	English   Code = "en"
	Russian   Code = "ru"
	Ukrainian Code = "uk"
	Polish    Code = "pl"
)

// Default — локаль по умолчанию.
const Default = English

// Locale — локаль с метаданными для отображения в переключателе.
type Locale struct {
	Code Code
	// Name — название языка на самом языке.
	Name string
	// Flag — флаг (emoji) для переключателя.
	Flag string
	Tag  language.Tag
}

// supported — неизменяемый список локалей. Порядок определяет порядок в навигации.
var supported = [...]Locale{
	{Code: English, Name: "English", Flag: "🇬🇧", Tag: language.English},
	{Code: Russian, Name: "Русский", Flag: "🇷🇺", Tag: language.Russian},
	{Code: Ukrainian, Name: "Українська", Flag: "🇺🇦", Tag: language.Ukrainian},
	{Code: Polish, Name: "Polski", Flag: "🇵🇱", Tag: language.Polish},
}

// matcher — языковой matcher для Accept-Language. Первый тег — fallback.
var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	out := make([]language.Tag, 0, len(supported))
	for _, l := range supported {
		out = append(out, l.Tag)
	}
	return out
}

// Supported возвращает копию списка поддерживаемых локалей.
func Supported() []Locale {
	out := supported
	return out[:]
}

// Codes возвращает коды поддерживаемых локалей.
func Codes() []Code {
	out := make([]Code, 0, len(supported))
	for _, l := range supported {
		out = append(out, l.Code)
	}
	return out
}

// Lookup ищет локаль по коду.
func Lookup(code string) (Locale, bool) {
	for _, l := range supported {
		if string(l.Code) == code {
			return l, true
		}
	}
	return Locale{}, false
}

// IsSupported сообщает, входит ли код в список поддерживаемых.
func IsSupported(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// Match определяет лучшую локаль по заголовку Accept-Language.
// Если ничего не подходит — Default.
func Match(acceptLanguage string) Code {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	_, idx, conf := matcher.Match(parseAccept(acceptLanguage)...)
	if conf == language.No {
		return Default
	}
	return supported[idx].Code
}

// parseAccept разбирает Accept-Language. Некорректный заголовок даёт пустой список.
func parseAccept(header string) []language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	return tags
}

// SplitPath отделяет префикс локали от пути.
// "/ru/about" → ("ru", "/about", true), "/about" → ("", "/about", false).
func SplitPath(path string) (Code, string, bool) {
	if path == "" {
		path = "/"
	}
	trimmed := strings.TrimPrefix(path, "/")
	first, rest, hasRest := strings.Cut(trimmed, "/")
	if !IsSupported(first) {
		return "", path, false
	}
	if !hasRest {
		return Code(first), "/", true
	}
	return Code(first), "/" + rest, true
}

// LocalizePath возвращает тот же логический путь под локалью code.
// Существующий префикс локали заменяется, query-строка сохраняется.
// "/ru/about?x=1" + "pl" → "/pl/about?x=1", "/" + "uk" → "/uk/".
func LocalizePath(path string, code Code) string {
	p, query, hasQuery := strings.Cut(path, "?")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	_, rest, _ := SplitPath(p)

	out := "/" + string(code) + rest
	if hasQuery {
		out += "?" + query
	}
	return out
}

// Switch переводит текущую страницу на другую локаль: тот же путь под target.
// Для неподдерживаемого target используется Default.
func Switch(currentPath string, target string) string {
	code := Default
	if l, ok := Lookup(target); ok {
		code = l.Code
	}
	return LocalizePath(currentPath, code)
}

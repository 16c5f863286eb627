// middleware.go — HTTP middleware для определения языка пользователя.
// Приоритет: cookie "lang" → заголовок Accept-Language → locale.Default.
package i18n

import (
	"net/http"

	"github.com/bigkaa/portfolio-site/internal/locale"
)

// LangCookieName — имя cookie для хранения выбранного языка.
const LangCookieName = "lang"

// Middleware создаёт HTTP middleware для определения языка и помещения его в контекст.
// Используется для страниц вне префикса локали ("/", 404, служебные редиректы).
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := DetectLanguage(r)
			ctx := WithLang(r.Context(), lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DetectLanguage определяет язык из запроса.
// Приоритет: cookie "lang" → Accept-Language → locale.Default.
func DetectLanguage(r *http.Request) locale.Code {
	// 1. Cookie "lang" (пользователь явно выбрал язык)
	if cookie, err := r.Cookie(LangCookieName); err == nil && cookie.Value != "" {
		if l, ok := locale.Lookup(cookie.Value); ok {
			return l.Code
		}
	}

	// 2. Accept-Language заголовок
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return locale.Match(accept)
	}

	// 3. Default
	return locale.Default
}

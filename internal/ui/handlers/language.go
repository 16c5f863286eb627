// language.go — переключение языка без JavaScript.
package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bigkaa/portfolio-site/internal/locale"
	"github.com/bigkaa/portfolio-site/internal/ui/i18n"
)

// langCookieMaxAge — срок хранения выбранного языка.
const langCookieMaxAge = 365 * 24 * time.Hour

// HandleSetLanguage обрабатывает GET|POST /set-language.
// Параметр lang (query или form): неподдерживаемый язык заменяется на locale.Default.
// Параметр path — страница, на которую вернуть пользователя; если не задан,
// используется путь из Referer, затем "/". Принимаются только локальные пути.
func HandleSetLanguage(w http.ResponseWriter, r *http.Request) {
	lang := locale.Default
	if l, ok := locale.Lookup(r.FormValue("lang")); ok {
		lang = l.Code
	}

	target := localPath(r.FormValue("path"))
	if target == "" {
		target = refererPath(r)
	}
	if target == "" {
		target = "/"
	}

	// Сохраняем выбор на 1 год
	http.SetCookie(w, &http.Cookie{
		Name:     i18n.LangCookieName,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   int(langCookieMaxAge.Seconds()),
		HttpOnly: false, // JS может читать для UI-логики
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(langCookieMaxAge),
	})

	http.Redirect(w, r, locale.Switch(target, string(lang)), http.StatusSeeOther)
}

// localPath возвращает raw, если это путь этого сайта ("/..."), иначе "".
// Отсекает абсолютные URL и protocol-relative адреса ("//evil", "/\evil").
func localPath(raw string) string {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return ""
	}
	return u.RequestURI()
}

// refererPath возвращает путь из Referer, если он указывает на этот же хост.
func refererPath(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil || u.Host != r.Host {
		return ""
	}
	return localPath(u.RequestURI())
}

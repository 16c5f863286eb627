// Пакет static — встроенные статические ресурсы сайта.
// Файлы встраиваются в бинарник через //go:embed и раздаются по /static/*.
package static

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed css/*.css js/*.js
var content embed.FS

// FileSystem возвращает http.FileSystem для обработки запросов к /static/*.
// Пути вида /static/css/site.css, /static/js/site.js.
func FileSystem() http.FileSystem {
	return http.FS(content)
}

// FS возвращает fs.FS для прямого доступа к встроенным файлам.
func FS() fs.FS {
	return content
}

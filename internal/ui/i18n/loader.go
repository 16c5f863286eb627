// loader.go — загрузка каталогов переводов из embed.FS.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/bigkaa/portfolio-site/internal/locale"
)

// LocaleFS — встроенные каталоги переводов, по одному на поддерживаемый язык.
//
//go:embed locales/*.json
var LocaleFS embed.FS

// LoadFromEmbedFS загружает каталоги переводов всех поддерживаемых языков
// из встроенной файловой системы: locales/<code>.json.
func LoadFromEmbedFS(bundle *Bundle, logger *slog.Logger) error {
	return LoadFromFS(bundle, LocaleFS, logger)
}

// LoadFromFS загружает каталоги из произвольной fs.FS (используется в тестах).
func LoadFromFS(bundle *Bundle, fsys fs.FS, logger *slog.Logger) error {
	codes := locale.Codes()

	for _, code := range codes {
		path := fmt.Sprintf("locales/%s.json", code)
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("i18n: не удалось прочитать %s: %w", path, err)
		}

		if err := bundle.LoadMessages(code, data); err != nil {
			return err
		}
	}

	logger.Info("i18n каталоги загружены", slog.Int("languages", len(codes)))
	return nil
}

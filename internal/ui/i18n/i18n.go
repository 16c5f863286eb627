// Пакет i18n — интернационализация страниц сайта.
// Предоставляет функции T(ctx, key) и Td(ctx, key, data) для получения
// переведённых строк из контекста HTTP-запроса.
// Каталоги — вложенные JSON-словари (namespace → key → строка), ключи
// адресуются через точку: "common.nav.home".
// Поддерживаемые языки берутся из пакета locale.
package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/bigkaa/portfolio-site/internal/locale"
)

// RequiredNamespaces — пространства имён, обязательные в каждом каталоге.
var RequiredNamespaces = []string{"common", "portfolio", "about_page"}

// ErrMissingNamespace — в каталоге нет обязательного пространства имён.
var ErrMissingNamespace = errors.New("i18n: отсутствует обязательное пространство имён")

// contextKey — тип ключа для контекста (избегаем коллизий).
type contextKey string

const (
	// contextKeyLang — текущий язык в контексте запроса.
	contextKeyLang contextKey = "i18n_lang"
)

// Bundle — хранилище переводов для всех языков.
// Загружается один раз при старте приложения.
type Bundle struct {
	mu         sync.RWMutex
	bundle     *goi18n.Bundle
	localizers map[locale.Code]*goi18n.Localizer
	loaded     map[locale.Code]int
	logger     *slog.Logger
}

// NewBundle создаёт пустой Bundle.
func NewBundle(logger *slog.Logger) *Bundle {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	return &Bundle{
		bundle:     b,
		localizers: make(map[locale.Code]*goi18n.Localizer),
		loaded:     make(map[locale.Code]int),
		logger:     logger,
	}
}

// LoadMessages загружает JSON-каталог переводов для указанного языка.
// Каталог обязан содержать пространства имён из RequiredNamespaces.
func (b *Bundle) LoadMessages(code locale.Code, data []byte) error {
	if !locale.IsSupported(string(code)) {
		return fmt.Errorf("i18n: язык %q не поддерживается", code)
	}

	var namespaces map[string]json.RawMessage
	if err := json.Unmarshal(data, &namespaces); err != nil {
		return fmt.Errorf("i18n: ошибка парсинга каталога %s: %w", code, err)
	}
	for _, ns := range RequiredNamespaces {
		if _, ok := namespaces[ns]; !ok {
			return fmt.Errorf("%w: %s в каталоге %s", ErrMissingNamespace, ns, code)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	file, err := b.bundle.ParseMessageFileBytes(data, string(code)+".json")
	if err != nil {
		return fmt.Errorf("i18n: ошибка загрузки каталога %s: %w", code, err)
	}

	// Цепочка поиска: запрошенный язык → английский.
	b.localizers[code] = goi18n.NewLocalizer(b.bundle, string(code), string(locale.Default))
	b.loaded[code] = len(file.Messages)

	if b.logger != nil {
		b.logger.Info("i18n каталог загружен",
			slog.String("lang", string(code)),
			slog.Int("keys", len(file.Messages)),
		)
	}
	return nil
}

// Loaded сообщает, загружены ли каталоги для всех поддерживаемых языков.
func (b *Bundle) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, code := range locale.Codes() {
		if _, ok := b.loaded[code]; !ok {
			return false
		}
	}
	return true
}

// Translate возвращает перевод по ключу для указанного языка.
// Если ключ не найден — возвращает ключ как есть (для отладки).
func (b *Bundle) Translate(lang, key string) string {
	return b.localize(lang, key, nil)
}

// TranslateData возвращает перевод с подстановкой данных шаблона ({{.Name}}).
func (b *Bundle) TranslateData(lang, key string, data map[string]any) string {
	return b.localize(lang, key, data)
}

func (b *Bundle) localize(lang, key string, data map[string]any) string {
	b.mu.RLock()
	localizer, ok := b.localizers[locale.Code(lang)]
	if !ok {
		localizer, ok = b.localizers[locale.Default]
	}
	b.mu.RUnlock()

	if !ok {
		return key
	}

	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		var notFound *goi18n.MessageNotFoundErr
		if !errors.As(err, &notFound) && b.logger != nil {
			b.logger.Warn("i18n: ошибка перевода",
				slog.String("lang", lang),
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}

	// Ключ не найден ни в одном каталоге
	if msg == "" {
		return key
	}
	return msg
}

// --- Глобальный Bundle (singleton) ---

var (
	globalBundle *Bundle
	globalOnce   sync.Once
)

// Init инициализирует глобальный Bundle. Вызывается один раз при старте.
func Init(logger *slog.Logger) *Bundle {
	globalOnce.Do(func() {
		globalBundle = NewBundle(logger)
	})
	return globalBundle
}

// GetBundle возвращает глобальный Bundle (nil если не инициализирован).
func GetBundle() *Bundle {
	return globalBundle
}

// --- Функции для использования в компонентах страниц ---

// WithLang помещает язык в контекст.
func WithLang(ctx context.Context, code locale.Code) context.Context {
	return context.WithValue(ctx, contextKeyLang, code)
}

// LangFromContext извлекает язык из контекста. Default: locale.Default.
func LangFromContext(ctx context.Context) locale.Code {
	if code, ok := ctx.Value(contextKeyLang).(locale.Code); ok && code != "" {
		return code
	}
	return locale.Default
}

// T возвращает перевод по ключу, используя язык из контекста.
func T(ctx context.Context, key string) string {
	if globalBundle == nil {
		return key
	}
	return globalBundle.Translate(string(LangFromContext(ctx)), key)
}

// Td возвращает перевод по ключу с данными шаблона.
func Td(ctx context.Context, key string, data map[string]any) string {
	if globalBundle == nil {
		return key
	}
	return globalBundle.TranslateData(string(LangFromContext(ctx)), key, data)
}

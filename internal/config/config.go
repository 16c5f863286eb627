// Пакет config — загрузка и валидация конфигурации сайта
// из переменных окружения (префикс PS_).
package config

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lmittmann/tint"
)

// Версия приложения, задаётся при сборке через -ldflags.
var Version = "dev"

// Config содержит все параметры конфигурации сайта.
type Config struct {
	// --- Сервер ---

	// Порт HTTP-сервера
	Port int `env:"PS_PORT" envDefault:"8080"`
	// Уровень логирования (debug, info, warn, error)
	LogLevel slog.Level `env:"PS_LOG_LEVEL" envDefault:"info"`
	// Формат логов (json, text)
	LogFormat string `env:"PS_LOG_FORMAT" envDefault:"json"`
	// Публичный адрес сайта для canonical, hreflang, og:url и sitemap
	BaseURL string `env:"PS_BASE_URL" envDefault:"http://localhost:8080"`

	// --- Виджет отзывов ---

	// Включить виджет отзывов на главной
	ReviewsEnabled bool `env:"PS_REVIEWS_ENABLED" envDefault:"true"`
	// URL внешнего скрипта платформы виджетов
	ReviewsScriptURL string `env:"PS_REVIEWS_SCRIPT_URL" envDefault:"https://static.elfsight.com/platform/platform.js"`
	// ID виджета на платформе (обязателен, если виджет включён)
	ReviewsWidgetID string `env:"PS_REVIEWS_WIDGET_ID"`

	// --- Заглушки изображений ---

	// Максимальное количество SVG в кэше
	PlaceholderCacheSize int `env:"PS_PLACEHOLDER_CACHE_SIZE" envDefault:"256"`
	// Время жизни записи кэша
	PlaceholderCacheTTL time.Duration `env:"PS_PLACEHOLDER_CACHE_TTL" envDefault:"1h"`

	// --- topologymetrics ---

	// Группа в метриках зависимостей
	DephealthGroup string `env:"PS_DEPHEALTH_GROUP" envDefault:"portfolio"`
	// Интервал проверки хоста виджета
	DephealthCheckInterval time.Duration `env:"PS_DEPHEALTH_CHECK_INTERVAL" envDefault:"30s"`

	// --- Graceful shutdown ---

	// Таймаут graceful shutdown HTTP-сервера
	ShutdownTimeout time.Duration `env:"PS_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load загружает конфигурацию из переменных окружения, валидирует
// значения и возвращает Config или ошибку.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора переменных окружения: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PS_PORT: значение %d вне допустимого диапазона 1-65535", c.Port)
	}

	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("PS_LOG_FORMAT: недопустимое значение %q, допустимые: json, text", c.LogFormat)
	}

	if err := validateURL(c.BaseURL, "http", "https"); err != nil {
		return fmt.Errorf("PS_BASE_URL: %w", err)
	}

	if c.ReviewsEnabled {
		if err := validateURL(c.ReviewsScriptURL, "https"); err != nil {
			return fmt.Errorf("PS_REVIEWS_SCRIPT_URL: %w", err)
		}
		if c.ReviewsWidgetID == "" {
			return fmt.Errorf("PS_REVIEWS_WIDGET_ID: обязательна при PS_REVIEWS_ENABLED=true")
		}
	}

	if c.PlaceholderCacheSize < 1 || c.PlaceholderCacheSize > 100000 {
		return fmt.Errorf("PS_PLACEHOLDER_CACHE_SIZE: значение %d вне допустимого диапазона 1-100000", c.PlaceholderCacheSize)
	}
	if c.PlaceholderCacheTTL <= 0 {
		return fmt.Errorf("PS_PLACEHOLDER_CACHE_TTL: должен быть положительным")
	}
	if c.DephealthCheckInterval <= 0 {
		return fmt.Errorf("PS_DEPHEALTH_CHECK_INTERVAL: должен быть положительным")
	}

	return nil
}

// validateURL проверяет, что строка — абсолютный URL с одной из схем.
func validateURL(raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("некорректный URL %q: %w", raw, err)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q должен быть абсолютным", raw)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("URL %q: схема должна быть %s", raw, strings.Join(schemes, " или "))
}

// Addr возвращает адрес для http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// SetupLogger настраивает глобальный slog-логгер на основе конфигурации.
// Формат text — цветной вывод tint для локальной разработки.
func SetupLogger(cfg *Config) *slog.Logger {
	logger := slog.New(newHandler(os.Stdout, cfg))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg *Config) slog.Handler {
	if cfg.LogFormat == "text" {
		return tint.NewHandler(w, &tint.Options{
			Level:      cfg.LogLevel,
			TimeFormat: time.DateTime,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel})
}

package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// setEnvs устанавливает переменные окружения на время теста.
func setEnvs(t *testing.T, envs map[string]string) {
	t.Helper()
	for k, v := range envs {
		t.Setenv(k, v)
	}
}

// minimalEnvs возвращает минимальный набор обязательных переменных.
func minimalEnvs() map[string]string {
	return map[string]string{
		"PS_REVIEWS_WIDGET_ID": "0f9c7a1e-widget",
	}
}

func TestLoad_MinimalConfig(t *testing.T) {
	setEnvs(t, minimalEnvs())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}

	// Проверяем значения по умолчанию
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, ожидается 8080", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, ожидается Info", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, ожидается json", cfg.LogFormat)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if !cfg.ReviewsEnabled {
		t.Error("ReviewsEnabled = false, ожидается true")
	}
	if cfg.ReviewsScriptURL != "https://static.elfsight.com/platform/platform.js" {
		t.Errorf("ReviewsScriptURL = %q", cfg.ReviewsScriptURL)
	}
	if cfg.PlaceholderCacheSize != 256 {
		t.Errorf("PlaceholderCacheSize = %d, ожидается 256", cfg.PlaceholderCacheSize)
	}
	if cfg.PlaceholderCacheTTL != time.Hour {
		t.Errorf("PlaceholderCacheTTL = %v, ожидается 1h", cfg.PlaceholderCacheTTL)
	}
	if cfg.DephealthGroup != "portfolio" {
		t.Errorf("DephealthGroup = %q, ожидается portfolio", cfg.DephealthGroup)
	}
	if cfg.DephealthCheckInterval != 30*time.Second {
		t.Errorf("DephealthCheckInterval = %v, ожидается 30s", cfg.DephealthCheckInterval)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, ожидается 5s", cfg.ShutdownTimeout)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q, ожидается :8080", cfg.Addr())
	}
}

func TestLoad_CustomValues(t *testing.T) {
	setEnvs(t, map[string]string{
		"PS_PORT":             "9090",
		"PS_LOG_LEVEL":        "debug",
		"PS_LOG_FORMAT":       "text",
		"PS_BASE_URL":         "https://nordlight.studio/",
		"PS_REVIEWS_ENABLED":  "false",
		"PS_SHUTDOWN_TIMEOUT": "10s",
		"PS_DEPHEALTH_GROUP":  "marketing",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, ожидается 9090", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, ожидается Debug", cfg.LogLevel)
	}
	if cfg.BaseURL != "https://nordlight.studio" {
		t.Errorf("BaseURL = %q, завершающий / должен обрезаться", cfg.BaseURL)
	}
	if cfg.ReviewsEnabled {
		t.Error("ReviewsEnabled = true, ожидается false")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, ожидается 10s", cfg.ShutdownTimeout)
	}
	if cfg.DephealthGroup != "marketing" {
		t.Errorf("DephealthGroup = %q", cfg.DephealthGroup)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		envs    map[string]string
		wantErr string
	}{
		{
			name:    "порт вне диапазона",
			envs:    map[string]string{"PS_PORT": "70000"},
			wantErr: "PS_PORT",
		},
		{
			name:    "порт не число",
			envs:    map[string]string{"PS_PORT": "abc"},
			wantErr: "Port",
		},
		{
			name:    "неизвестный формат логов",
			envs:    map[string]string{"PS_LOG_FORMAT": "xml"},
			wantErr: "PS_LOG_FORMAT",
		},
		{
			name:    "относительный base URL",
			envs:    map[string]string{"PS_BASE_URL": "/site"},
			wantErr: "PS_BASE_URL",
		},
		{
			name:    "скрипт виджета по http",
			envs:    map[string]string{"PS_REVIEWS_SCRIPT_URL": "http://cdn.example.com/w.js"},
			wantErr: "PS_REVIEWS_SCRIPT_URL",
		},
		{
			name:    "размер кэша ноль",
			envs:    map[string]string{"PS_PLACEHOLDER_CACHE_SIZE": "0"},
			wantErr: "PS_PLACEHOLDER_CACHE_SIZE",
		},
		{
			name:    "некорректная длительность",
			envs:    map[string]string{"PS_SHUTDOWN_TIMEOUT": "soon"},
			wantErr: "ShutdownTimeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvs(t, minimalEnvs())
			setEnvs(t, tt.envs)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() должен вернуть ошибку")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ошибка %q не упоминает %s", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoad_WidgetIDRequired(t *testing.T) {
	t.Setenv("PS_REVIEWS_ENABLED", "true")
	t.Setenv("PS_REVIEWS_WIDGET_ID", "")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "PS_REVIEWS_WIDGET_ID") {
		t.Fatalf("ожидается ошибка PS_REVIEWS_WIDGET_ID, получено %v", err)
	}
}

func TestNewHandler_Formats(t *testing.T) {
	var buf bytes.Buffer

	jsonLogger := slog.New(newHandler(&buf, &Config{LogFormat: "json", LogLevel: slog.LevelInfo}))
	jsonLogger.Info("проверка", slog.String("k", "v"))
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("json-формат: %q", buf.String())
	}

	buf.Reset()
	textLogger := slog.New(newHandler(&buf, &Config{LogFormat: "text", LogLevel: slog.LevelWarn}))
	textLogger.Info("не должно попасть в лог")
	if buf.Len() != 0 {
		t.Errorf("уровень warn пропустил info: %q", buf.String())
	}
	textLogger.Warn("предупреждение")
	if !strings.Contains(buf.String(), "предупреждение") {
		t.Errorf("text-формат: %q", buf.String())
	}
}

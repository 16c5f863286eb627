// dephealth.go — интеграция с topologymetrics SDK для мониторинга зависимостей.
//
// Сайт мониторит одну внешнюю зависимость:
//   - хост скрипта виджета отзывов — HTTP checker (non-critical)
//
// Недоступность хоста не делает сайт неготовым: страница рендерится,
// виджет просто не загрузится в браузере. В readiness это отражается как "degraded".
//
// Метрики доступны на /metrics вместе с остальными Prometheus-метриками:
//   - app_dependency_health — состояние зависимости (1 = ok, 0 = fail)
//   - app_dependency_latency_seconds — задержка проверки
package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/BigKAA/topologymetrics/sdk-go/dephealth"
	_ "github.com/BigKAA/topologymetrics/sdk-go/dephealth/checks/httpcheck" // HTTP checker для хоста виджета
	"github.com/prometheus/client_golang/prometheus"
)

// WidgetDependency — имя зависимости хоста виджета в метриках и Health().
const WidgetDependency = "reviews-widget"

// DephealthService — сервис мониторинга зависимостей через topologymetrics.
type DephealthService struct {
	dh     *dephealth.DepHealth
	logger *slog.Logger
}

// NewDephealthService создаёт сервис мониторинга зависимостей.
// Метрики регистрируются в глобальном Prometheus registry.
//
// Параметры:
//   - serviceID — имя вершины графа текущего приложения (e.g. "portfolio-site")
//   - group — имя группы в метриках (PS_DEPHEALTH_GROUP)
//   - widgetScriptURL — URL скрипта виджета отзывов; проверяется сам путь скрипта
//   - checkInterval — интервал проверки (PS_DEPHEALTH_CHECK_INTERVAL)
func NewDephealthService(
	serviceID string,
	group string,
	widgetScriptURL string,
	checkInterval time.Duration,
	logger *slog.Logger,
) (*DephealthService, error) {
	return newDephealthService(serviceID, group, widgetScriptURL, checkInterval, logger)
}

// NewDephealthServiceWithRegisterer создаёт сервис с указанным Prometheus registerer.
// Используется в тестах для изоляции метрик.
func NewDephealthServiceWithRegisterer(
	serviceID string,
	group string,
	widgetScriptURL string,
	checkInterval time.Duration,
	logger *slog.Logger,
	registerer prometheus.Registerer,
) (*DephealthService, error) {
	return newDephealthService(serviceID, group, widgetScriptURL, checkInterval, logger,
		dephealth.WithRegisterer(registerer))
}

// newDephealthService — внутренний конструктор.
func newDephealthService(
	serviceID string,
	group string,
	widgetScriptURL string,
	checkInterval time.Duration,
	logger *slog.Logger,
	extraOpts ...dephealth.Option,
) (*DephealthService, error) {
	// У CDN нет /health — проверяем доступность самого скрипта.
	healthPath := "/"
	if parsed, parseErr := url.Parse(widgetScriptURL); parseErr == nil && parsed.Path != "" {
		healthPath = parsed.Path
	}

	opts := []dephealth.Option{
		dephealth.WithLogger(logger),
		dephealth.HTTP(WidgetDependency,
			dephealth.FromURL(widgetScriptURL),
			dephealth.WithHTTPHealthPath(healthPath),
			dephealth.CheckInterval(checkInterval),
			dephealth.Critical(false),
		),
	}
	opts = append(opts, extraOpts...)

	dh, err := dephealth.New(serviceID, group, opts...)
	if err != nil {
		return nil, err
	}

	return &DephealthService{
		dh:     dh,
		logger: logger.With(slog.String("component", "dephealth")),
	}, nil
}

// Start запускает периодическую проверку зависимостей.
func (ds *DephealthService) Start(ctx context.Context) error {
	ds.logger.Info("Мониторинг зависимостей запущен (хост виджета отзывов)")
	return ds.dh.Start(ctx)
}

// Stop останавливает мониторинг зависимостей.
func (ds *DephealthService) Stop() {
	ds.dh.Stop()
	ds.logger.Info("Мониторинг зависимостей остановлен")
}

// Health возвращает текущее состояние зависимостей.
// Ключ — "dependency:host:port", значение — true если ok.
func (ds *DephealthService) Health() map[string]bool {
	return ds.dh.Health()
}

// CheckReady реализует ReadinessChecker для /health/ready.
// Хост виджета некритичен: недоступность даёт "degraded", не "fail".
func (ds *DephealthService) CheckReady() (string, string) {
	healthy, found := findHealthByPrefix(ds.Health(), WidgetDependency)
	switch {
	case !found:
		return "ok", "проверка ещё не выполнялась"
	case !healthy:
		return "degraded", "хост виджета отзывов недоступен"
	default:
		return "ok", ""
	}
}

// findHealthByPrefix ищет зависимость по имени в ключах формата "name:host:port".
func findHealthByPrefix(health map[string]bool, name string) (healthy, found bool) {
	for key, val := range health {
		if key == name || strings.HasPrefix(key, name+":") {
			return val, true
		}
	}
	return false, false
}

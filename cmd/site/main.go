// Точка входа portfolio-site — сайт-портфолио веб-студии.
// Загружает конфигурацию, каталоги переводов и контент, поднимает
// мониторинг хоста виджета отзывов (topologymetrics), HTTP-сервер
// со страницами, заглушками и служебными endpoints, graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"os"

	apihandlers "github.com/bigkaa/portfolio-site/internal/api/handlers"
	"github.com/bigkaa/portfolio-site/internal/config"
	"github.com/bigkaa/portfolio-site/internal/content"
	"github.com/bigkaa/portfolio-site/internal/server"
	"github.com/bigkaa/portfolio-site/internal/service"
	uihandlers "github.com/bigkaa/portfolio-site/internal/ui/handlers"
	"github.com/bigkaa/portfolio-site/internal/ui/i18n"
	"github.com/bigkaa/portfolio-site/internal/ui/placeholder"
	"github.com/bigkaa/portfolio-site/internal/ui/widget"
)

// serviceID — имя вершины графа зависимостей в topologymetrics.
const serviceID = "portfolio-site"

func main() {
	// 1. Загрузка конфигурации из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Ошибка загрузки конфигурации", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 2. Настройка логирования
	logger := config.SetupLogger(cfg)
	logger.Info("portfolio-site запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
		slog.String("base_url", cfg.BaseURL),
	)

	// 3. Каталоги переводов (все поддерживаемые локали обязательны)
	bundle := i18n.Init(logger)
	if err := i18n.LoadFromEmbedFS(bundle, logger); err != nil {
		logger.Error("Ошибка загрузки каталогов переводов", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 4. Контент сайта
	siteContent, err := content.Load()
	if err != nil {
		logger.Error("Ошибка загрузки контента", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 5. Readiness checkers
	checkers := []apihandlers.NamedChecker{{
		Name: "i18n",
		Checker: apihandlers.CheckerFunc(func() (string, string) {
			if !bundle.Loaded() {
				return "fail", "каталоги переводов загружены не для всех языков"
			}
			return "ok", ""
		}),
	}}

	// 6. Виджет отзывов и мониторинг его хоста (опционально, PS_REVIEWS_ENABLED)
	ctx := context.Background()
	var reviews *widget.Config
	var dephealthSvc *service.DephealthService
	if cfg.ReviewsEnabled {
		reviews = &widget.Config{
			ScriptURL: cfg.ReviewsScriptURL,
			AppID:     cfg.ReviewsWidgetID,
		}

		dephealthSvc, err = service.NewDephealthService(
			serviceID,
			cfg.DephealthGroup,
			cfg.ReviewsScriptURL,
			cfg.DephealthCheckInterval,
			logger,
		)
		if err != nil {
			logger.Warn("topologymetrics недоступен, запуск без мониторинга зависимостей",
				slog.String("error", err.Error()),
			)
			dephealthSvc = nil
		} else if startErr := dephealthSvc.Start(ctx); startErr != nil {
			logger.Warn("Ошибка запуска topologymetrics", slog.String("error", startErr.Error()))
			dephealthSvc = nil
		} else {
			logger.Info("topologymetrics запущен",
				slog.String("group", cfg.DephealthGroup),
				slog.String("check_interval", cfg.DephealthCheckInterval.String()),
			)
			checkers = append(checkers, apihandlers.NamedChecker{Name: "reviews_widget", Checker: dephealthSvc})
		}
	} else {
		logger.Info("Виджет отзывов отключён (PS_REVIEWS_ENABLED=false)")
	}

	// 7. Handlers и роутер
	router := server.NewRouter(logger, server.Handlers{
		Pages: uihandlers.NewPagesHandler(siteContent, cfg.BaseURL, reviews, logger),
		Placeholder: uihandlers.NewPlaceholderHandler(
			placeholder.NewCache(cfg.PlaceholderCacheSize, cfg.PlaceholderCacheTTL),
			logger,
		),
		SEO:          uihandlers.NewSEOHandler(cfg.BaseURL, logger),
		Health:       apihandlers.NewHealthHandler(checkers...),
		WidgetEvents: apihandlers.NewWidgetEventsHandler(logger),
	})

	// 8. Создание и запуск HTTP-сервера
	srv := server.New(cfg, logger, router)
	runErr := srv.Run()

	// 9. Остановка фоновых задач
	if dephealthSvc != nil {
		dephealthSvc.Stop()
	}

	if runErr != nil {
		logger.Error("Ошибка сервера", slog.String("error", runErr.Error()))
		os.Exit(1)
	}
	logger.Info("portfolio-site остановлен")
}

// Пакет server — HTTP-сервер сайта с graceful shutdown.
// Без TLS — TLS termination на ingress/балансировщике.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	apihandlers "github.com/bigkaa/portfolio-site/internal/api/handlers"
	"github.com/bigkaa/portfolio-site/internal/api/middleware"
	"github.com/bigkaa/portfolio-site/internal/config"
	"github.com/bigkaa/portfolio-site/internal/ui/i18n"
	uihandlers "github.com/bigkaa/portfolio-site/internal/ui/handlers"
	"github.com/bigkaa/portfolio-site/internal/ui/pages"
	"github.com/bigkaa/portfolio-site/internal/ui/static"
	"github.com/bigkaa/portfolio-site/internal/ui/widget"
)

// Handlers — обработчики, подключаемые к роутеру.
type Handlers struct {
	Pages        *uihandlers.PagesHandler
	Placeholder  *uihandlers.PlaceholderHandler
	SEO          *uihandlers.SEOHandler
	Health       *apihandlers.HealthHandler
	WidgetEvents *apihandlers.WidgetEventsHandler
}

// NewRouter собирает все маршруты сайта.
func NewRouter(logger *slog.Logger, h Handlers) http.Handler {
	router := chi.NewRouter()

	// Глобальные middleware (применяются ко ВСЕМ маршрутам).
	// Health, metrics и статика логируются на уровне DEBUG.
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestLogger(logger, "/health/", "/metrics", "/static/"))
	router.Use(i18n.Middleware())

	router.NotFound(h.Pages.HandleNotFound)

	// Служебные endpoints
	router.Get("/health/live", h.Health.HealthLive)
	router.Get("/health/ready", h.Health.HealthReady)
	router.Get("/metrics", h.Health.GetMetrics)
	router.Post(widget.EventsPath, h.WidgetEvents.HandleEvent)

	// Статика и заглушки
	router.Handle("/static/*", staticHandler())
	router.Get("/placeholder/{size}.svg", h.Placeholder.HandlePlaceholder)
	router.Get("/robots.txt", h.SEO.HandleRobots)
	router.Get("/sitemap.xml", h.SEO.HandleSitemap)

	// Переключение языка без JavaScript
	router.Get(pages.SetLanguagePath, uihandlers.HandleSetLanguage)
	router.Post(pages.SetLanguagePath, uihandlers.HandleSetLanguage)

	// Страницы: / → /{lang}/
	router.Get("/", h.Pages.HandleRoot)
	router.Route("/{lang}", func(r chi.Router) {
		r.Use(h.Pages.LocaleFromPath)
		r.Get("/", h.Pages.HandleHome)
		r.Get("/portfolio", h.Pages.HandlePortfolio)
		r.Get("/about", h.Pages.HandleAbout)
	})

	return router
}

// staticHandler раздаёт встроенные CSS/JS по /static/*.
func staticHandler() http.Handler {
	files := http.StripPrefix("/static/", http.FileServer(static.FileSystem()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// Server — HTTP-сервер сайта.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        *config.Config
}

// New создаёт HTTP-сервер с готовым роутером.
func New(cfg *config.Config, logger *slog.Logger, handler http.Handler) *Server {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
		cfg:        cfg,
	}
}

// Run запускает сервер и ожидает сигнала завершения (SIGINT, SIGTERM).
// При получении сигнала выполняется graceful shutdown.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.RunContext(ctx)
}

// RunContext запускает сервер до отмены ctx, затем выполняет graceful shutdown.
func (s *Server) RunContext(ctx context.Context) error {
	// Канал для ошибок сервера
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP-сервер запущен",
			slog.String("addr", s.httpServer.Addr),
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Получен сигнал завершения", slog.String("reason", context.Cause(ctx).Error()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка HTTP-сервера: %w", err)
		}
		return nil
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Выполняется graceful shutdown...")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("ошибка при graceful shutdown: %w", err)
	}

	s.logger.Info("HTTP-сервер остановлен")
	return nil
}

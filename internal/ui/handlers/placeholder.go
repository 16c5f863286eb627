// placeholder.go — раздача SVG-заглушек изображений.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/bigkaa/portfolio-site/internal/api/errors"
	"github.com/bigkaa/portfolio-site/internal/ui/placeholder"
)

// PlaceholderHandler — обработчик GET /placeholder/{size}.svg.
type PlaceholderHandler struct {
	cache  *placeholder.Cache
	logger *slog.Logger
}

// NewPlaceholderHandler создаёт PlaceholderHandler.
func NewPlaceholderHandler(cache *placeholder.Cache, logger *slog.Logger) *PlaceholderHandler {
	return &PlaceholderHandler{
		cache:  cache,
		logger: logger.With(slog.String("component", "ui.placeholder")),
	}
}

// HandlePlaceholder отдаёт SVG размера {size} ("640x400") с подписью из ?text=.
// SVG детерминирован, поэтому кэшируется браузером надолго.
func (h *PlaceholderHandler) HandlePlaceholder(w http.ResponseWriter, r *http.Request) {
	width, height, err := placeholder.ParseSize(chi.URLParam(r, "size"))
	if err != nil {
		apierrors.ValidationError(w, err.Error())
		return
	}

	svg, err := h.cache.Get(width, height, r.URL.Query().Get("text"))
	if err != nil {
		if errors.Is(err, placeholder.ErrInvalidText) || errors.Is(err, placeholder.ErrInvalidSize) {
			apierrors.ValidationError(w, err.Error())
			return
		}
		h.logger.Error("Ошибка генерации заглушки", slog.String("error", err.Error()))
		apierrors.InternalError(w, "Ошибка генерации заглушки")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

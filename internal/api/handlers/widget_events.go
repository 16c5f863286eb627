// widget_events.go — приём уведомлений браузера о загрузке внешних скриптов виджетов.
// POST /api/v1/widget-events — событие только логируется и считается в метриках,
// на рендеринг страницы и поведение виджета не влияет.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apierrors "github.com/bigkaa/portfolio-site/internal/api/errors"
	"github.com/bigkaa/portfolio-site/internal/ui/widget"
)

// maxEventBody — лимит тела события (sendBeacon отправляет небольшой JSON).
const maxEventBody = 1 << 10

// widgetScriptEventsTotal — события загрузки скриптов виджетов.
var widgetScriptEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ps_widget_script_events_total",
		Help: "Количество событий загрузки внешних скриптов виджетов",
	},
	[]string{"widget", "event"},
)

// widgetEventRequest — тело события.
type widgetEventRequest struct {
	Widget   string       `json:"widget"`
	Instance string       `json:"instance"`
	Event    widget.Event `json:"event"`
}

// WidgetEventsHandler — обработчик событий виджетов.
type WidgetEventsHandler struct {
	logger *slog.Logger
}

// NewWidgetEventsHandler создаёт WidgetEventsHandler.
func NewWidgetEventsHandler(logger *slog.Logger) *WidgetEventsHandler {
	return &WidgetEventsHandler{
		logger: logger.With(slog.String("component", "api.widget_events")),
	}
}

// HandleEvent обрабатывает POST /api/v1/widget-events.
// load → INFO, error → WARN. Ответ 204 без тела.
func (h *WidgetEventsHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxEventBody)

	var req widgetEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apierrors.PayloadTooLarge(w, "Тело события превышает допустимый размер")
			return
		}
		apierrors.ValidationError(w, "Некорректный JSON события")
		return
	}

	if req.Widget != widget.Name {
		apierrors.ValidationError(w, "Неизвестный виджет")
		return
	}
	if !req.Event.Valid() {
		apierrors.ValidationError(w, "Неизвестное событие, допустимые: load, error")
		return
	}
	if _, err := uuid.Parse(req.Instance); err != nil {
		apierrors.ValidationError(w, "Некорректный instance")
		return
	}

	widgetScriptEventsTotal.WithLabelValues(req.Widget, string(req.Event)).Inc()

	attrs := []slog.Attr{
		slog.String("widget", req.Widget),
		slog.String("instance", req.Instance),
		slog.String("page", r.Referer()),
		slog.String("user_agent", r.UserAgent()),
	}
	if req.Event == widget.EventError {
		h.logger.LogAttrs(r.Context(), slog.LevelWarn, "Ошибка загрузки скрипта виджета", attrs...)
	} else {
		h.logger.LogAttrs(r.Context(), slog.LevelInfo, "Скрипт виджета загружен", attrs...)
	}

	w.WriteHeader(http.StatusNoContent)
}

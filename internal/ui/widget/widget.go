// Пакет widget — встраивание стороннего виджета отзывов.
// Виджет владеет одним внешним <script> на время жизни экземпляра:
// Mount создаёт и прикрепляет его к документу, Unmount удаляет.
// Об успешной загрузке или ошибке браузер сообщает на EventsPath,
// сервер только логирует событие (без повторов и запасного рендеринга).
package widget

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/bigkaa/portfolio-site/internal/ui/document"
)

// Name — имя виджета в событиях и метриках.
const Name = "reviews"

// EventsPath — endpoint для уведомлений о загрузке скрипта.
const EventsPath = "/api/v1/widget-events"

// ReporterFunc — имя JS-функции в layout, отправляющей событие на EventsPath.
const ReporterFunc = "reportWidgetEvent"

// Event — событие загрузки внешнего скрипта.
type Event string

const (
	EventLoad  Event = "load"
	EventError Event = "error"
)

// Valid сообщает, известно ли событие.
func (e Event) Valid() bool {
	return e == EventLoad || e == EventError
}

// Config — параметры виджета отзывов.
type Config struct {
	// ScriptURL — адрес внешнего скрипта платформы виджетов.
	ScriptURL string
	// AppID — идентификатор виджета на платформе.
	AppID string
}

// ReviewWidget — экземпляр виджета отзывов на одной странице.
type ReviewWidget struct {
	cfg        Config
	instanceID string
	logger     *slog.Logger

	doc    *document.Document
	script *document.Script
}

// NewReviewWidget создаёт экземпляр виджета с уникальным instance ID.
func NewReviewWidget(cfg Config, logger *slog.Logger) *ReviewWidget {
	id := uuid.NewString()
	return &ReviewWidget{
		cfg:        cfg,
		instanceID: id,
		logger: logger.With(
			slog.String("component", "ui.widget"),
			slog.String("widget", Name),
			slog.String("instance", id),
		),
	}
}

// InstanceID возвращает идентификатор экземпляра.
func (w *ReviewWidget) InstanceID() string { return w.instanceID }

// AppID возвращает идентификатор виджета на платформе.
func (w *ReviewWidget) AppID() string { return w.cfg.AppID }

// ContainerClass возвращает CSS-класс контейнера, который ищет скрипт платформы.
func (w *ReviewWidget) ContainerClass() string { return "elfsight-app-" + w.cfg.AppID }

// Mounted сообщает, прикреплён ли скрипт экземпляра к документу.
func (w *ReviewWidget) Mounted() bool {
	return w.script != nil && w.doc != nil && w.doc.Contains(w.script)
}

// Mount создаёт внешний скрипт и добавляет его в body документа.
// Повторный Mount смонтированного экземпляра ничего не делает:
// на один экземпляр приходится не более одного скрипта.
// Mount(nil) ничего не монтирует.
func (w *ReviewWidget) Mount(doc *document.Document) {
	if w.script != nil || doc == nil {
		return
	}

	handler := func(event Event) string {
		return ReporterFunc + "(this,'" + string(event) + "')"
	}

	w.doc = doc
	w.script = &document.Script{
		ID:    "reviews-widget-" + w.instanceID,
		Src:   w.cfg.ScriptURL,
		Async: true,
		Attrs: map[string]string{
			"data-widget":   Name,
			"data-instance": w.instanceID,
			"onload":        handler(EventLoad),
			"onerror":       handler(EventError),
		},
	}
	doc.AppendChild(w.script)

	w.logger.Debug("Скрипт виджета добавлен в документ", slog.String("src", w.cfg.ScriptURL))
}

// Unmount удаляет скрипт из документа, если он ещё прикреплён.
// Безопасен для повторного вызова и для немонтированного экземпляра.
// Загрузку, уже начатую браузером, не отменяет.
func (w *ReviewWidget) Unmount() {
	if w.script == nil {
		return
	}

	if w.doc.Contains(w.script) {
		// Ошибка невозможна: наличие проверено выше.
		_ = w.doc.RemoveChild(w.script)
		w.logger.Debug("Скрипт виджета удалён из документа")
	}

	w.script = nil
	w.doc = nil
}

// Script возвращает текущий скрипт экземпляра (nil до Mount и после Unmount).
func (w *ReviewWidget) Script() *document.Script {
	return w.script
}

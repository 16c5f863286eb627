// Пакет document — серверная модель документа страницы.
// Компоненты добавляют в body внешние скрипты на время рендеринга страницы,
// layout выводит их в конце body.
package document

import (
	"errors"
	"slices"
)

// ErrNotChild — скрипт не прикреплён к документу.
var ErrNotChild = errors.New("document: элемент не является дочерним для body")

// Script — элемент <script> с внешним источником.
type Script struct {
	ID    string
	Src   string
	Async bool
	// Attrs — дополнительные атрибуты (onload, onerror, data-*).
	Attrs map[string]string
}

// Document — body одной отрисовки страницы.
// Не предназначен для конкурентного использования: один документ на запрос.
type Document struct {
	body []*Script
}

// New создаёт пустой документ.
func New() *Document {
	return &Document{}
}

// AppendChild добавляет скрипт в конец body.
func (d *Document) AppendChild(s *Script) {
	d.body = append(d.body, s)
}

// RemoveChild удаляет скрипт из body. Если скрипт не прикреплён — ErrNotChild.
func (d *Document) RemoveChild(s *Script) error {
	idx := slices.Index(d.body, s)
	if idx < 0 {
		return ErrNotChild
	}
	d.body = slices.Delete(d.body, idx, idx+1)
	return nil
}

// Contains сообщает, прикреплён ли скрипт к body.
func (d *Document) Contains(s *Script) bool {
	return slices.Contains(d.body, s)
}

// Scripts возвращает копию списка скриптов body в порядке добавления.
func (d *Document) Scripts() []*Script {
	return slices.Clone(d.body)
}

package document

import (
	"errors"
	"testing"
)

func TestDocument_AppendRemove(t *testing.T) {
	doc := New()
	a := &Script{ID: "a", Src: "https://example.com/a.js"}
	b := &Script{ID: "b", Src: "https://example.com/b.js"}

	doc.AppendChild(a)
	doc.AppendChild(b)

	scripts := doc.Scripts()
	if len(scripts) != 2 || scripts[0] != a || scripts[1] != b {
		t.Fatalf("Scripts() = %v, ожидается [a b]", scripts)
	}

	if err := doc.RemoveChild(a); err != nil {
		t.Fatalf("RemoveChild(a): %v", err)
	}
	if doc.Contains(a) {
		t.Error("a остался в документе после удаления")
	}
	if !doc.Contains(b) {
		t.Error("b пропал из документа")
	}

	if err := doc.RemoveChild(a); !errors.Is(err, ErrNotChild) {
		t.Errorf("повторное удаление: ожидается ErrNotChild, получено %v", err)
	}
}

func TestDocument_ScriptsIsCopy(t *testing.T) {
	doc := New()
	doc.AppendChild(&Script{ID: "a"})

	scripts := doc.Scripts()
	scripts[0] = nil

	if doc.Scripts()[0] == nil {
		t.Error("изменение копии не должно влиять на документ")
	}
}

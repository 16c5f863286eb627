package placeholder

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		w, h    int
		wantErr bool
	}{
		{input: "640x400", w: 640, h: 400},
		{input: "1X1", w: 1, h: 1},
		{input: "4000x4000", w: 4000, h: 4000},
		{input: "0x10", wantErr: true},
		{input: "4001x10", wantErr: true},
		{input: "640", wantErr: true},
		{input: "axb", wantErr: true},
		{input: "-5x10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, h, err := ParseSize(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Errorf("ожидается ErrInvalidSize, получено %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q): %v", tt.input, err)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("ParseSize(%q) = %dx%d, ожидается %dx%d", tt.input, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestRender(t *testing.T) {
	svg, err := Render(320, 200, "")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	s := string(svg)
	if !strings.HasPrefix(s, "<svg") || !strings.HasSuffix(s, "</svg>") {
		t.Errorf("некорректный SVG: %s", s)
	}
	if !strings.Contains(s, `width="320" height="200"`) {
		t.Error("SVG не содержит размеров")
	}
	if !strings.Contains(s, "320×200") {
		t.Error("подпись по умолчанию должна быть ШxВ")
	}
}

func TestRender_EscapesText(t *testing.T) {
	svg, err := Render(100, 100, `<b>"x"</b>`)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(svg), "<b>") {
		t.Error("подпись не экранирована")
	}
}

func TestRender_TextTooLong(t *testing.T) {
	_, err := Render(100, 100, strings.Repeat("я", MaxTextLen+1))
	if !errors.Is(err, ErrInvalidText) {
		t.Errorf("ожидается ErrInvalidText, получено %v", err)
	}
}

func TestCache_ReusesEntries(t *testing.T) {
	c := NewCache(2, time.Minute)

	first, err := c.Get(10, 10, "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := c.Get(10, 10, "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if &first[0] != &second[0] {
		t.Error("повторный Get должен вернуть закэшированный SVG")
	}

	_, _ = c.Get(20, 20, "")
	_, _ = c.Get(30, 30, "")
	if c.Len() != 2 {
		t.Errorf("Len() = %d, ожидается 2 (вытеснение LRU)", c.Len())
	}
}

func TestCache_InvalidNotCached(t *testing.T) {
	c := NewCache(4, time.Minute)
	if _, err := c.Get(0, 10, ""); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("ожидается ErrInvalidSize, получено %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, ошибочный результат не должен кэшироваться", c.Len())
	}
}

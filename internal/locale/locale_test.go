package locale

import (
	"testing"
)

func TestSupported_ReturnsCopy(t *testing.T) {
	list := Supported()
	if len(list) != 4 {
		t.Fatalf("len(Supported()) = %d, ожидается 4", len(list))
	}
	list[0].Code = "xx"

	if Supported()[0].Code != English {
		t.Error("изменение возвращённого среза не должно влиять на список локалей")
	}
}

func TestCodes_Order(t *testing.T) {
	want := []Code{English, Russian, Ukrainian, Polish}
	got := Codes()
	if len(got) != len(want) {
		t.Fatalf("Codes() = %v, ожидается %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Codes()[%d] = %q, ожидается %q", i, got[i], want[i])
		}
	}
}

func TestLookup(t *testing.T) {
	l, ok := Lookup("uk")
	if !ok {
		t.Fatal("Lookup(uk) не нашёл локаль")
	}
	if l.Name != "Українська" || l.Flag != "🇺🇦" {
		t.Errorf("Lookup(uk) = %+v", l)
	}

	for _, code := range []string{"", "de", "EN", "en-US"} {
		if IsSupported(code) {
			t.Errorf("IsSupported(%q) = true, ожидается false", code)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Code
	}{
		{name: "пустой заголовок", header: "", want: English},
		{name: "русский", header: "ru-RU,ru;q=0.9,en;q=0.8", want: Russian},
		{name: "украинский", header: "uk-UA,uk;q=0.9", want: Ukrainian},
		{name: "польский с весами", header: "de;q=0.9,pl;q=0.8", want: Polish},
		{name: "английский регион", header: "en-GB", want: English},
		{name: "неподдерживаемый язык", header: "ja-JP", want: English},
		{name: "мусор в заголовке", header: ";;;===", want: English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.header); got != tt.want {
				t.Errorf("Match(%q) = %q, ожидается %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path     string
		wantCode Code
		wantRest string
		wantOK   bool
	}{
		{path: "/ru/about", wantCode: Russian, wantRest: "/about", wantOK: true},
		{path: "/pl", wantCode: Polish, wantRest: "/", wantOK: true},
		{path: "/en/", wantCode: English, wantRest: "/", wantOK: true},
		{path: "/uk/portfolio/", wantCode: Ukrainian, wantRest: "/portfolio/", wantOK: true},
		{path: "/about", wantCode: "", wantRest: "/about", wantOK: false},
		{path: "/de/about", wantCode: "", wantRest: "/de/about", wantOK: false},
		{path: "", wantCode: "", wantRest: "/", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			code, rest, ok := SplitPath(tt.path)
			if code != tt.wantCode || rest != tt.wantRest || ok != tt.wantOK {
				t.Errorf("SplitPath(%q) = (%q, %q, %v), ожидается (%q, %q, %v)",
					tt.path, code, rest, ok, tt.wantCode, tt.wantRest, tt.wantOK)
			}
		})
	}
}

func TestLocalizePath(t *testing.T) {
	tests := []struct {
		path string
		code Code
		want string
	}{
		{path: "/ru/about", code: Polish, want: "/pl/about"},
		{path: "/", code: Ukrainian, want: "/uk/"},
		{path: "/en", code: Russian, want: "/ru/"},
		{path: "/portfolio", code: English, want: "/en/portfolio"},
		{path: "about", code: English, want: "/en/about"},
		{path: "/ru/portfolio?tag=web", code: English, want: "/en/portfolio?tag=web"},
	}

	for _, tt := range tests {
		t.Run(tt.path+"→"+string(tt.code), func(t *testing.T) {
			if got := LocalizePath(tt.path, tt.code); got != tt.want {
				t.Errorf("LocalizePath(%q, %q) = %q, ожидается %q", tt.path, tt.code, got, tt.want)
			}
		})
	}
}

// Для каждой поддерживаемой локали переключатель сохраняет путь и меняет только локаль.
func TestSwitch_EverySupportedLocale(t *testing.T) {
	paths := []string{"/en/", "/ru/about", "/uk/portfolio", "/pl/about?ref=nav"}

	for _, l := range Supported() {
		for _, p := range paths {
			got := Switch(p, string(l.Code))

			code, rest, ok := SplitPath(got)
			if !ok || code != l.Code {
				t.Errorf("Switch(%q, %q) = %q: локаль %q, ожидается %q", p, l.Code, got, code, l.Code)
			}

			_, wantRest, _ := SplitPath(p)
			if rest != wantRest {
				t.Errorf("Switch(%q, %q) = %q: путь %q, ожидается %q", p, l.Code, got, rest, wantRest)
			}
		}
	}
}

func TestSwitch_UnsupportedFallsBackToDefault(t *testing.T) {
	if got := Switch("/ru/about", "de"); got != "/en/about" {
		t.Errorf("Switch(/ru/about, de) = %q, ожидается /en/about", got)
	}
}

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// bufferLogger создаёт logger, пишущий в буфер.
func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{name: "успешный запрос", path: "/en/", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "клиентская ошибка", path: "/xx", status: http.StatusNotFound, wantLevel: "level=WARN"},
		{name: "серверная ошибка", path: "/en/", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
		{name: "health на debug", path: "/health/live", status: http.StatusOK, wantLevel: "level=DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := RequestLogger(bufferLogger(&buf), "/health/", "/static/")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("ok"))
			}))

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			out := buf.String()
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("лог %q не содержит %s", out, tt.wantLevel)
			}
			if !strings.Contains(out, "bytes=2") {
				t.Errorf("лог %q не содержит размер ответа", out)
			}
		})
	}
}

func TestRoutePattern(t *testing.T) {
	var got string

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := newMetricsResponseWriter(w)
			next.ServeHTTP(wrapped, r)
			got = routePattern(r, wrapped.statusCode)
		})
	})
	router.Get("/{lang}/about", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ru/about", nil))
	if got != "/{lang}/about" {
		t.Errorf("routePattern = %q, ожидается /{lang}/about", got)
	}

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/random/path", nil))
	if got != unmatchedPath {
		t.Errorf("routePattern для 404 = %q, ожидается %q", got, unmatchedPath)
	}
}

func TestMetricsMiddleware_PassesThrough(t *testing.T) {
	h := MetricsMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("статус = %d, ожидается 418", rec.Code)
	}
}

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func staticChecker(status, msg string) ReadinessChecker {
	return CheckerFunc(func() (string, string) { return status, msg })
}

func TestHealthLive(t *testing.T) {
	h := NewHealthHandler()
	rec := httptest.NewRecorder()

	h.HealthLive(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("статус = %d, ожидается 200", rec.Code)
	}
	var resp healthLiveResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("декодирование ответа: %v", err)
	}
	if resp.Status != "ok" || resp.Service != serviceName {
		t.Errorf("ответ = %+v", resp)
	}
}

func TestHealthReady(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []NamedChecker
		wantStatus string
		wantCode   int
	}{
		{
			name: "все зависимости ok",
			checkers: []NamedChecker{
				{Name: "i18n", Checker: staticChecker("ok", "")},
				{Name: "reviews_widget", Checker: staticChecker("ok", "")},
			},
			wantStatus: "ok",
			wantCode:   http.StatusOK,
		},
		{
			name: "виджет недоступен — degraded",
			checkers: []NamedChecker{
				{Name: "i18n", Checker: staticChecker("ok", "")},
				{Name: "reviews_widget", Checker: staticChecker("degraded", "хост недоступен")},
			},
			wantStatus: "degraded",
			wantCode:   http.StatusOK,
		},
		{
			name: "переводы не загружены — fail",
			checkers: []NamedChecker{
				{Name: "i18n", Checker: staticChecker("fail", "каталоги не загружены")},
			},
			wantStatus: "fail",
			wantCode:   http.StatusServiceUnavailable,
		},
		{
			name:       "nil checker — fail",
			checkers:   []NamedChecker{{Name: "i18n"}},
			wantStatus: "fail",
			wantCode:   http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.checkers...)
			rec := httptest.NewRecorder()

			h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			if rec.Code != tt.wantCode {
				t.Errorf("статус = %d, ожидается %d", rec.Code, tt.wantCode)
			}
			var resp healthReadyResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("декодирование ответа: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, ожидается %q", resp.Status, tt.wantStatus)
			}
			if len(resp.Checks) != len(tt.checkers) {
				t.Errorf("checks = %v", resp.Checks)
			}
		})
	}
}

// testLogger создаёт logger для тестов.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

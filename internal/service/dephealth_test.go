// dephealth_test.go — тесты мониторинга хоста виджета отзывов.
package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// testLogger создаёт logger для тестов.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFindHealthByPrefix(t *testing.T) {
	tests := []struct {
		name        string
		health      map[string]bool
		wantHealthy bool
		wantFound   bool
	}{
		{
			name:        "ключ с хостом и портом",
			health:      map[string]bool{"reviews-widget:static.elfsight.com:443": true},
			wantHealthy: true,
			wantFound:   true,
		},
		{
			name:        "зависимость недоступна",
			health:      map[string]bool{"reviews-widget:cdn:443": false},
			wantHealthy: false,
			wantFound:   true,
		},
		{
			name:      "похожий префикс не совпадает",
			health:    map[string]bool{"reviews-widget-v2:cdn:443": true},
			wantFound: false,
		},
		{
			name:      "пустая карта",
			health:    map[string]bool{},
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			healthy, found := findHealthByPrefix(tt.health, WidgetDependency)
			if healthy != tt.wantHealthy || found != tt.wantFound {
				t.Errorf("findHealthByPrefix = (%v, %v), ожидается (%v, %v)",
					healthy, found, tt.wantHealthy, tt.wantFound)
			}
		})
	}
}

// startService поднимает DephealthService против тестового сервера.
func startService(t *testing.T, serviceID string, status int) *DephealthService {
	t.Helper()

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(mockServer.Close)

	ds, err := NewDephealthServiceWithRegisterer(
		serviceID,
		"portfolio",
		mockServer.URL+"/platform/platform.js",
		1*time.Second,
		testLogger(),
		prometheus.NewRegistry(),
	)
	if err != nil {
		t.Fatalf("Ошибка создания DephealthService: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	// Start не должен блокировать
	if err := ds.Start(ctx); err != nil {
		t.Fatalf("Ошибка запуска: %v", err)
	}
	t.Cleanup(ds.Stop)

	// Даём время на первую проверку (интервал 1s + запас)
	time.Sleep(3 * time.Second)
	return ds
}

func TestDephealthService_HealthyWidgetHost(t *testing.T) {
	ds := startService(t, "test-site-01", http.StatusOK)

	status, msg := ds.CheckReady()
	if status != "ok" {
		t.Errorf("CheckReady() = (%q, %q), ожидается ok", status, msg)
	}
}

func TestDephealthService_UnhealthyWidgetHost(t *testing.T) {
	ds := startService(t, "test-site-02", http.StatusInternalServerError)

	status, _ := ds.CheckReady()
	if status != "degraded" {
		t.Errorf("CheckReady() = %q, ожидается degraded (сервер 500)", status)
	}
}

package metric

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metrics:
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metrics
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMenuCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMenu(reg)

	m.Builds.Increment("tools", OutcomeOK)
	m.Builds.Increment("tools", OutcomeOK)
	m.Builds.Increment("settings", OutcomeEmpty)
	m.Cache.Increment(CacheHit)

	if got := counterValue(t, reg, "envf_menu_builds_total", map[string]string{"menu": "tools", "outcome": OutcomeOK}); got != 2 {
		t.Errorf("tools/ok = %v, want 2", got)
	}
	if got := counterValue(t, reg, "envf_menu_builds_total", map[string]string{"menu": "settings", "outcome": OutcomeEmpty}); got != 1 {
		t.Errorf("settings/empty = %v, want 1", got)
	}
	if got := counterValue(t, reg, "envf_menu_cache_total", map[string]string{"result": CacheHit}); got != 1 {
		t.Errorf("cache hit = %v, want 1", got)
	}
}

func TestNewMenuTwiceOnSameRegistryPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMenu(reg)

	defer func() {
		if recover() == nil {
			t.Error("registering the same counters twice should panic")
		}
	}()
	NewMenu(reg)
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMenu(reg).Cache.Increment(CacheMiss)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if rec.Code != http.StatusOK || !strings.Contains(string(body), `envf_menu_cache_total{result="miss"} 1`) {
		t.Errorf("Handler() = %d %s", rec.Code, body)
	}
}

func TestNopMenu(t *testing.T) {
	m := NopMenu()
	m.Builds.Increment("tools", OutcomeOK)
	m.Cache.Increment(CacheHit)
}

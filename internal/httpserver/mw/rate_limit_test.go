package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiterReserve(t *testing.T) {
	l := newLimiter(RateLimitConfig{Burst: 2, RefillPerIPPerMin: 60})
	now := time.Now()

	for i := 0; i < 2; i++ {
		if ok, _ := l.reserve("10.0.0.1", now); !ok {
			t.Fatalf("request %d within burst was rejected", i+1)
		}
	}

	ok, wait := l.reserve("10.0.0.1", now)
	if ok {
		t.Fatal("request beyond burst was accepted")
	}
	if wait <= 0 || wait > time.Second {
		t.Errorf("wait = %v, want at most one refill period", wait)
	}

	if ok, _ := l.reserve("10.0.0.2", now); !ok {
		t.Error("buckets must be per client")
	}
	if ok, _ := l.reserve("10.0.0.1", now.Add(time.Second)); !ok {
		t.Error("bucket should refill after a second at 60/min")
	}
}

func TestLimiterSweepsIdleVisitors(t *testing.T) {
	l := newLimiter(RateLimitConfig{
		Burst:             1,
		RefillPerIPPerMin: 60,
		SweepInterval:     time.Minute,
		IdleTTL:           time.Minute,
	})
	now := time.Now()

	l.reserve("10.0.0.1", now)
	l.reserve("10.0.0.2", now.Add(2*time.Minute))

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.visitors["10.0.0.1"]; ok {
		t.Error("idle visitor should have been swept")
	}
	if len(l.visitors) != 1 {
		t.Errorf("visitors = %d, want 1", len(l.visitors))
	}
}

func TestRateLimitDisabled(t *testing.T) {
	calls := 0
	h := RateLimit(RateLimitConfig{Burst: 1})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/menu/tools", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 without a refill rate", rec.Code)
		}
	}
	if calls != 5 {
		t.Errorf("handler called %d times, want 5", calls)
	}
}

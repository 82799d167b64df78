package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIPMatcher(t *testing.T) {
	m, invalid := NewIPMatcher([]string{"10.0.0.0/8", " 192.168.1.10 ", "::1", "not-an-ip", ""})
	if diff := cmp.Diff([]string{"not-an-ip"}, invalid); diff != "" {
		t.Errorf("invalid entries mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"192.168.1.10", true},
		{"192.168.1.11", false},
		{"::1", true},
		{"::ffff:10.0.0.7", true},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			if got := m.Allow(tt.ip); got != tt.want {
				t.Errorf("Allow(%q) = %v, want %v", tt.ip, got, tt.want)
			}
		})
	}
}

func TestIPMatcherEmpty(t *testing.T) {
	m, _ := NewIPMatcher(nil)
	if !m.IsEmpty() {
		t.Error("IsEmpty() = false for an empty list")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		xff        string
		realIP     string
		trustProxy bool
		want       string
	}{
		{"remote addr", "10.0.0.1:5555", "", "", false, "10.0.0.1"},
		{"xff ignored without trust", "10.0.0.1:5555", "203.0.113.9", "", false, "10.0.0.1"},
		{"first xff with trust", "10.0.0.1:5555", "203.0.113.9, 10.0.0.2", "", true, "203.0.113.9"},
		{"real ip with trust", "10.0.0.1:5555", "", "203.0.113.7", true, "203.0.113.7"},
		{"no headers with trust", "[::1]:5555", "", "", true, "::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/envf/internal/httpserver/deps"
)

type componentStatus struct {
	OK     bool   `json:"ok"`
	Mode   string `json:"mode,omitempty"`
	Impact string `json:"impact,omitempty"`
	Error  string `json:"error,omitempty"`
}

type readyzResponse struct {
	Ready      bool                       `json:"ready"`
	Mode       string                     `json:"mode"`
	Extensions int                        `json:"extensions"`
	Components map[string]componentStatus `json:"components"`
}

// Readyz reports readiness. Redis is optional: its loss degrades caching but keeps the service ready.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		redis := checkRedis(r.Context(), d)

		resp := readyzResponse{
			Ready:      d.Composer != nil && d.Renderer != nil,
			Mode:       "optimal",
			Components: map[string]componentStatus{"redis": redis},
		}
		if d.Index != nil {
			resp.Extensions = d.Index.Count()
		}
		if d.Redis != nil && !redis.OK {
			resp.Mode = "degraded"
		}

		status := http.StatusOK
		if !resp.Ready {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, status, resp)
	}
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.Redis == nil {
		return componentStatus{OK: false, Mode: "disabled", Impact: "menu-cache-disabled"}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Redis.Ping(ctx); err != nil {
		return componentStatus{OK: false, Mode: "degraded", Impact: "menu-cache-disabled", Error: err.Error()}
	}
	return componentStatus{OK: true, Mode: "optimal", Impact: "menu-cache-enabled"}
}

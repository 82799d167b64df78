package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/envf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/envf/internal/version"
)

type healthzResponse struct {
	Status        string  `json:"status"`
	Component     string  `json:"component"`
	Release       string  `json:"release"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Version       string  `json:"version,omitempty"`
	Commit        string  `json:"commit,omitempty"`
	BuildDate     string  `json:"build_date,omitempty"`
	GoVersion     string  `json:"go_version,omitempty"`
}

func Healthz(d deps.Deps) http.HandlerFunc {
	start := d.StartTime
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, healthzResponse{
			Status:        "ok",
			Component:     version.Component,
			Release:       version.Release,
			Version:       d.Version,
			Commit:        d.Commit,
			BuildDate:     d.BuildDate,
			GoVersion:     d.GoVersion,
			UptimeSeconds: time.Since(start).Seconds(),
		})
	}
}

package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/envf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/envf/internal/logger"
)

type reloadResponse struct {
	Status string `json:"status"`
}

// Reload triggers a manual reload of the extensions file.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.ReloadTrigger == nil {
			writeError(w, http.StatusServiceUnavailable, "no extensions file configured")
			return
		}

		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual extension reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusAccepted, reloadResponse{Status: "reload triggered"})
		default:
			d.Logger.Warn("extension reload already pending",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, http.StatusTooManyRequests, reloadResponse{Status: "reload already pending"})
		}
	}
}

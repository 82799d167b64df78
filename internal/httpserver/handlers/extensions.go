package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/envf/internal/httpserver/deps"
)

type extensionStatus struct {
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	Items     int       `json:"items"`
	Sources   []string  `json:"sources"`
	Disabled  bool      `json:"disabled"`
	UpdatedAt time.Time `json:"updated_at"`
}

type extensionsResponse struct {
	Contributors []string          `json:"contributors"`
	Extensions   []extensionStatus `json:"extensions"`
	LastReload   string            `json:"last_reload"`
}

// Extensions lists the registered contributors and the known providers.
func Extensions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := extensionsResponse{
			Contributors: d.Registry.Names(),
			Extensions:   []extensionStatus{},
			LastReload:   "never",
		}

		if d.Index != nil {
			for _, ext := range d.Index.GetAllExtensions() {
				resp.Extensions = append(resp.Extensions, extensionStatus{
					Name:      ext.Name,
					Order:     ext.Order,
					Items:     len(ext.Items),
					Sources:   ext.Sources,
					Disabled:  ext.Disabled,
					UpdatedAt: ext.UpdatedAt,
				})
			}
			if last := d.Index.GetLastReload(); !last.IsZero() {
				resp.LastReload = last.Format(time.RFC3339)
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

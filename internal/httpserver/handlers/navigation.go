package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/envf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/envf/internal/nav"
	"github.com/MrSnakeDoc/envf/internal/page"
)

type navigationResponse struct {
	Navigation *nav.Node `json:"navigation"`
}

// ExtendNavigation returns the posted navigation tree pruned by the theme capabilities.
func ExtendNavigation(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		p, err := decodePage(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		tree := d.Composer.ExtendNavigation(p, page.NewCapabilitySet(p.Capabilities))
		writeJSON(w, http.StatusOK, navigationResponse{Navigation: tree})
	}
}

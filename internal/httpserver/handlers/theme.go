package handlers

import (
	"net/http"
	"strconv"

	"github.com/MrSnakeDoc/envf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/envf/internal/logger"
	"github.com/MrSnakeDoc/envf/internal/page"
	"github.com/MrSnakeDoc/envf/internal/theme"
	"github.com/MrSnakeDoc/envf/internal/version"
)

type themeInfoResponse struct {
	Name           string     `json:"name"`
	Component      string     `json:"component"`
	Release        string     `json:"release"`
	Maturity       string     `json:"maturity"`
	LogoURL        string     `json:"logourl,omitempty"`
	CompactLogoURL string     `json:"compactlogourl,omitempty"`
	Info           theme.Info `json:"info"`
}

// ThemeInfo returns logos and the additional template data of a layout.
// Query: layout, maxwidth, maxheight.
func ThemeInfo(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		maxWidth := queryInt(q.Get("maxwidth"))
		maxHeight := queryInt(q.Get("maxheight"))

		info, err := d.Theme.AdditionalInfo(&page.Page{Layout: q.Get("layout")})
		if err != nil {
			d.Logger.Error("failed to build theme info", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to build theme info")
			return
		}

		writeJSON(w, http.StatusOK, themeInfoResponse{
			Name:           d.Theme.Name(),
			Component:      version.Component,
			Release:        version.Release,
			Maturity:       version.Maturity,
			LogoURL:        d.Theme.LogoURL(maxWidth, maxHeight),
			CompactLogoURL: d.Theme.CompactLogoURL(maxWidth, maxHeight),
			Info:           info,
		})
	}
}

// ThemeLayouts lists the page layouts of the theme.
func ThemeLayouts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Theme.Layouts())
	}
}

// queryInt parses a non-negative integer, 0 when absent or invalid.
func queryInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0
	}
	return i
}

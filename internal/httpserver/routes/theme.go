package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/envf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/envf/internal/httpserver/handlers"
)

func init() { Register("theme", registerTheme) }

func registerTheme(r chi.Router, d deps.Deps) {
	r.Get("/api/theme/info", handlers.ThemeInfo(d))
	r.Get("/api/theme/layouts", handlers.ThemeLayouts(d))
}

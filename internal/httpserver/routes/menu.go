package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/envf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/envf/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/envf/internal/httpserver/mw"
)

func init() { Register("menu", registerMenu) }

func registerMenu(r chi.Router, d deps.Deps) {
	limited := r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		MaxEntries:        10000,
		TrustProxy:        d.TrustProxy,
	}))
	limited.Post("/api/menu/tools", handlers.Tools(d))
	limited.Post("/api/menu/settings", handlers.Settings(d))
	limited.Post("/api/navigation/extend", handlers.ExtendNavigation(d))
}

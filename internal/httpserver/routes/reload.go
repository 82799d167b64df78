package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/envf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/envf/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/envf/internal/httpserver/mw"
)

func init() { Register("extensions", registerExtensions) }

func registerExtensions(r chi.Router, d deps.Deps) {
	restricted := r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))
	restricted.Post("/reload", handlers.Reload(d))
	restricted.Get("/api/extensions", handlers.Extensions(d))
}

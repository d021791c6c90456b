package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/features/internal/httpserver/deps"
	"github.com/MrSnakeDoc/features/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/features/internal/httpserver/mw"
)

func init() { Register(registerPages, hostGuard) }

// Page and fragment routes share one "pages" budget so a client cannot double it.
func registerPages(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateBurst,
		RefillPerIPPerMin: d.RatePerMin,
		MaxEntries:        10000,
		TrustProxy:        d.TrustProxy,
		Scope:             "pages",
	})

	r.With(limit).Get("/", handlers.Home(d))
	r.With(limit).Get("/fragments/features", handlers.Features(d))
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/features/internal/httpserver/deps"
	"github.com/MrSnakeDoc/features/internal/httpserver/handlers"
)

func init() { Register(registerHealthz, opsGuard) }

func registerHealthz(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))
}

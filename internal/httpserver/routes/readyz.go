package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/features/internal/httpserver/deps"
	"github.com/MrSnakeDoc/features/internal/httpserver/handlers"
)

func init() { Register(registerReadyz, opsGuard) }

func registerReadyz(r chi.Router, d deps.Deps) {
	r.Get("/readyz", handlers.Readyz(d))
}

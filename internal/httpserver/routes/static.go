package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/features/internal/httpserver/deps"
	"github.com/MrSnakeDoc/features/internal/httpserver/handlers"
)

func init() { Register(registerStatic, hostGuard) }

func registerStatic(r chi.Router, d deps.Deps) {
	static := handlers.Static(d)
	r.Handle("/img/*", static)
	r.Handle("/css/*", static)
}

package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/features/internal/httpserver/deps"
)

// Static serves the embedded icon and stylesheet trees.
func Static(d deps.Deps) http.Handler {
	files := http.FileServer(http.FS(d.Static))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

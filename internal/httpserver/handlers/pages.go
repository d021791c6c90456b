package handlers

import (
	"bytes"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/MrSnakeDoc/features/internal/features"
	"github.com/MrSnakeDoc/features/internal/httpserver/deps"
	"github.com/MrSnakeDoc/features/internal/logger"
	"github.com/MrSnakeDoc/features/internal/pages"
)

// Home serves the full homepage with the features grid.
func Home(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := features.HomepageFeatures(d.Icons, d.Styles)
		writeHTML(w, d.Logger, pages.Home(d.Site, section))
	}
}

// Features serves the features section alone, for embedding by another page.
func Features(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHTML(w, d.Logger, features.HomepageFeatures(d.Icons, d.Styles))
	}
}

// writeHTML renders into a buffer first so a failed render never leaves a half-written 200.
func writeHTML(w http.ResponseWriter, log logger.Logger, n g.Node) {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		log.Error("render failed", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Debug("write response failed", logger.Error(err))
	}
}

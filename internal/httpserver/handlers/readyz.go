package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/features/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
	Icons int  `json:"icons"`
}

// Readyz reports ready once the icon catalog is wired in.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ready := d.Icons != nil
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		if !ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		_ = json.NewEncoder(w).Encode(readyzResponse{
			Ready: ready,
			Icons: d.IconCount,
		})
	}
}

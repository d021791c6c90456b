package mw

import (
	"net/http"

	"github.com/MrSnakeDoc/features/internal/logger"
	"github.com/MrSnakeDoc/features/internal/utils"
)

// AllowOnlyCIDRS guards the ops endpoints (healthz/readyz) with an IP/CIDR
// allowlist. An empty list leaves them open.
func AllowOnlyCIDRS(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	m := utils.NewIPMatcher(allowed)
	if m.IsEmpty() {
		log.Debug("ops allowlist empty, endpoints open")
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, trustProxy)
			if m.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			log.Warn("ops endpoint rejected",
				logger.String("path", r.URL.Path),
				logger.String("client_ip", ip),
				logger.Bool("trust_proxy", trustProxy),
			)
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}
}

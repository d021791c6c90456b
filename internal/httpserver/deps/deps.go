package deps

import (
	"io/fs"
	"time"

	"github.com/MrSnakeDoc/features/internal/features"
	"github.com/MrSnakeDoc/features/internal/logger"
	"github.com/MrSnakeDoc/features/internal/pages"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	Site         pages.Site            // title and tagline for the homepage
	Icons        features.IconResolver // resolved once at startup
	IconCount    int                   // number of icons resolved, reported by readyz
	Styles       features.Styles       // class names for the features section
	Static       fs.FS                 // embedded img/ and css/ trees
	AllowedHosts []string              // Host headers allowed to access page routes
	AllowedCIDRS []string              // IPs allowed to access healthz/readyz endpoints
	TrustProxy   bool                  // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RateBurst    int                   // token bucket capacity per client IP on page routes
	RatePerMin   int                   // token refill per client IP per minute
}

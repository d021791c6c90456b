package version

import (
	"fmt"
	"runtime"
	"time"
)

// Overridden at build time with -ldflags "-X github.com/MrSnakeDoc/features/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = time.Now().Format(time.RFC3339)
	GoVersion = runtime.Version()
)

// String is the one-line build summary logged at startup.
func String() string {
	return fmt.Sprintf("features %s (commit=%s, built=%s, go=%s)", Version, Commit, BuildDate, GoVersion)
}

// Package version holds build metadata, set at link time with
// -ldflags "-X github.com/itsmostafa/invreorder/internal/version.Version=..."
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Package version carries build metadata, set at link time:
//
//	go build -ldflags "-X github.com/bulga138/lined/version.Version=v1.0.0"
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// String returns the version line printed by -version.
func String() string {
	return fmt.Sprintf("%s (%s) built at %s", Version, Commit, BuildTime)
}

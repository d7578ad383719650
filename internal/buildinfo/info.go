// Package buildinfo carries version metadata stamped at link time:
//
//	go build -ldflags "-X github.com/deeppockets-dev/deeppockets/internal/buildinfo.Version=v1.2.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}

// Package buildinfo exposes version metadata injected at build time via
// -ldflags.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the human-readable version line.
func String() string {
	return fmt.Sprintf("cookiescale %s (commit=%s, date=%s)", Version, Commit, Date)
}

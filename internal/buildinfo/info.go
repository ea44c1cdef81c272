// Package buildinfo holds version metadata injected at build time.
package buildinfo

// Set via -ldflags at release build time; the defaults mark dev builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

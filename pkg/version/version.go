// Package version holds build information injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/MythicDrops/semantic-release-sonatype/pkg/version.Version=1.4.0"
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release version of the binary
	Version = "0.0.0-dev"

	// GitCommit is the git commit hash (set during build)
	GitCommit = "unknown"

	// BuildDate is the build date (set during build)
	BuildDate = "unknown"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("semantic-release-sonatype version %s (commit: %s, built: %s)",
		Short(), commit(), BuildDate)
}

// Short returns just the version number
func Short() string {
	return Version
}

// commit falls back to the VCS revision stamped by the Go toolchain.
func commit() string {
	if GitCommit != "unknown" {
		return GitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return setting.Value
			}
		}
	}
	return GitCommit
}

// SPDX-License-Identifier: MIT

// Package version carries build metadata stamped in via ldflags.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release tag, populated by the build system (ldflags).
	Version = "v2.3.0"

	// Commit is the git short hash of the build.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)

// String renders a single-line version banner.
func String() string {
	return fmt.Sprintf("viewsvg %s (commit %s, built %s)", Version, Commit, Date)
}

// Resolve fills Commit from module build info when ldflags did not set it,
// so `go install` builds still report something useful.
func Resolve() {
	if Commit != "unknown" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			Commit = s.Value[:7]
		}
		if s.Key == "vcs.time" && Date == "unknown" {
			Date = s.Value
		}
	}
}

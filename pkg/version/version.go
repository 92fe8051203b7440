// Package version carries the build identity stamped into the binary.
// Container builds without a .git directory override the commit via
// -ldflags; everything else comes from the module's VCS build info.
package version

import "runtime/debug"

// AppName identifies the service in version strings and user agents.
const AppName = "docmatrix"

// commitOverride is set via -ldflags at build time. Empty means no
// override.
var commitOverride string

var (
	// GitCommit is the short commit hash, "dev" when unknown (for
	// example under `go test`).
	GitCommit string
	// Dirty reports uncommitted changes in the build tree.
	Dirty bool
	// BuildTime is the commit timestamp from VCS info, empty when
	// unknown.
	BuildTime string
)

func init() {
	GitCommit, Dirty, BuildTime = resolve()
}

func resolve() (commit string, dirty bool, buildTime string) {
	commit = "dev"
	if commitOverride != "" {
		return short(commitOverride), false, ""
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, false, ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if s.Value != "" {
				commit = short(s.Value)
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		case "vcs.time":
			buildTime = s.Value
		}
	}
	return commit, dirty, buildTime
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "docmatrix/<commit>" for user-agent strings and startup
// logs, with a -dirty suffix for builds from a modified tree.
func Full() string {
	if Dirty {
		return AppName + "/" + GitCommit + "-dirty"
	}
	return AppName + "/" + GitCommit
}

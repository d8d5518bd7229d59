package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time via ldflags
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string (commit-hash based, no semver)
func String() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = fromBuildInfo(info, commit, built)
	}
	return format(commit, built)
}

func format(commit, built string) string {
	return fmt.Sprintf("ivrprompts dev (commit: %s, built: %s)", shortCommit(commit), built)
}

// fromBuildInfo fills values that ldflags left unset from the vcs stamp of `go build`.
func fromBuildInfo(info *debug.BuildInfo, commit, built string) (string, string) {
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && commit == "unknown":
			commit = s.Value
		case s.Key == "vcs.time" && built == "unknown":
			built = s.Value
		}
	}
	return commit, built
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

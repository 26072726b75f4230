// Package version derives the build identity reported in logs and
// user-agent strings.
//
// Resolution order: -ldflags override, then VCS stamps from
// debug.ReadBuildInfo, then the "dev" fallback for go test and other
// unstamped builds.
package version

import "runtime/debug"

// AppName prefixes every version string wanderplan emits.
const AppName = "wanderplan"

// commitOverride is injected with -ldflags for container builds where the
// .git directory is not part of the build context.
var commitOverride string

// GitCommit is the short commit hash of this build, suffixed with "-dirty"
// when the working tree had uncommitted changes at stamp time.
var GitCommit = resolveCommit()

// Full returns "wanderplan/<commit>", the canonical identity string for the
// startup banner and outbound user agents.
func Full() string {
	return AppName + "/" + GitCommit
}

func resolveCommit() string {
	if commitOverride != "" {
		return short(commitOverride)
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	commit, dirty := "", false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if commit == "" {
		return "dev"
	}
	if dirty {
		return short(commit) + "-dirty"
	}
	return short(commit)
}

func short(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}

package version

import (
	"runtime/debug"
)

var (
	// Version is the semantic version of the build.
	Version = "v0.0.0-dev"

	// Revision is the VCS revision of the build.
	Revision = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if v := info.Main.Version; v != "" && v != "(devel)" && Version == "v0.0.0-dev" {
		Version = v
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" && Revision == "unknown" {
			Revision = s.Value
		}
	}
}

// String returns the version and revision in a single line.
func String() string {
	return Version + "+" + Revision
}

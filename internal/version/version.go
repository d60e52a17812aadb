package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are populated at build time via -ldflags. Values left at
// their defaults are filled from the module build info when it has them.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a human-friendly version string that surfaces build metadata.
func Info() string {
	version, commit, date := Version, Commit, Date

	if info, ok := debug.ReadBuildInfo(); ok {
		if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch {
			case setting.Key == "vcs.revision" && commit == "none":
				commit = shortRevision(setting.Value)
			case setting.Key == "vcs.time" && date == "unknown":
				date = setting.Value
			}
		}
	}

	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

func shortRevision(revision string) string {
	if len(revision) > 12 {
		return revision[:12]
	}
	return revision
}

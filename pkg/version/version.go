// Package version provides build information for the unihdr CLI tool.
package version

import (
	"fmt"
	"runtime"
)

// These variables are populated at build time using -ldflags.
// Example:
// go build -ldflags "-X 'unihdr/pkg/version.Version=0.3.0' -X 'unihdr/pkg/version.Commit=abcdefg' -X 'unihdr/pkg/version.BuildTime=2026-10-18T09:00:00Z'"
var (
	Version   = "dev"     // Semantic version of the application
	Commit    = "none"    // Git commit hash
	BuildTime = "unknown" // Build timestamp
)

// Info describes the running unihdr binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string // GOOS/GOARCH
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the info on one line, e.g.
// unihdr 0.3.0 (commit abcdefg, built 2026-10-18T09:00:00Z, go1.23.1 linux/amd64)
func (i Info) String() string {
	return fmt.Sprintf("unihdr %s (commit %s, built %s, %s %s)",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}

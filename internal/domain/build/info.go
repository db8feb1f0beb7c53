// Package build provides domain entities for build information.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String renders the version line printed by --version.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	if i.Commit == "" {
		return version
	}
	return fmt.Sprintf("%s (%s, built %s, %s)", version, i.Commit, i.BuildDate, i.GoVersion)
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/colorline"
}

// Package buildinfo carries the version, commit and build date injected via
// ldflags and interprets the version as semver where possible.
package buildinfo

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info is the build metadata of the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Release bool   `json:"release"`
}

// New returns Info for the given ldflags values.
func New(version, commit, date string) Info {
	return Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		Release: IsRelease(version),
	}
}

// String formats the info for humans, e.g. "gen-features version 1.2.0 (commit: abc, built: today)".
func (i Info) String(name string) string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", name, i.Version, i.Commit, i.Date)
}

// IsRelease reports whether version is a tagged semver release
// (parses cleanly and carries no prerelease suffix).
func IsRelease(version string) bool {
	v, err := parseSemver(version)
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

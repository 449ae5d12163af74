// Package version reports the build version, set at link time with
// -ldflags "-X intake/internal/shared/version.Version=v1.2.3".
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

// Info is the build metadata exposed by the version command and endpoint.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Release bool   `json:"release"`
}

func Get() Info {
	return Info{
		Version: Normalize(Version),
		Commit:  Commit,
		Release: IsRelease(Version),
	}
}

// Normalize adds the "v" prefix semver expects. Non-semver values such as
// "dev" are returned unchanged.
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	if semver.IsValid("v" + v) {
		return "v" + v
	}
	return v
}

// IsRelease reports whether v is a semver release without a prerelease tag.
func IsRelease(v string) bool {
	v = Normalize(v)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}

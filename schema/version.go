package schema

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// canonical turns "3.2.0" into "v3.2.0"; invalid tags yield "".
func canonical(version string) string {
	v := strings.TrimSpace(version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}

// ValidVersion reports whether version is a semantic version tag such as "2.6.0".
func ValidVersion(version string) bool { return canonical(version) != "" }

// MajorVersion returns the major number of a version tag, or -1 when invalid.
func MajorVersion(version string) int {
	c := canonical(version)
	if c == "" {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimPrefix(semver.Major(c), "v"))
	if err != nil {
		return -1
	}
	return n
}

// AtLeast reports whether version >= since. An empty since is always met and
// an invalid version is treated as the newest.
func AtLeast(version, since string) bool {
	if since == "" {
		return true
	}
	v, s := canonical(version), canonical(since)
	if v == "" || s == "" {
		return true
	}
	return semver.Compare(v, s) >= 0
}

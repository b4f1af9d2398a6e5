package pkgmeta

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckVersion reports whether version is a semantic version.
// A leading "v" is tolerated.
func CheckVersion(version string) error {
	if _, err := parseSemver(version); err != nil {
		return fmt.Errorf("version %q is not semver: %w", version, err)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.StrictNewVersion(version)
}

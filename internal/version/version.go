package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed X.Y.Z release number.
type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse parses a version string in the format "X.Y.Z" (a leading "v" is allowed).
func Parse(versionStr string) (Version, error) {
	core := strings.TrimPrefix(strings.TrimSpace(versionStr), "v")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: expected X.Y.Z, got %s", versionStr)
	}

	major, err := parsePart(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version: %w", err)
	}
	minor, err := parsePart(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor version: %w", err)
	}
	patch, err := parsePart(parts[2])
	if err != nil {
		return Version{}, fmt.Errorf("invalid patch version: %w", err)
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

func parsePart(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative component %d", n)
	}
	return n, nil
}

// IsSemver reports whether s follows the X.Y.Z convention.
// Release tags are never rejected on this basis; callers only warn.
func IsSemver(s string) bool {
	_, err := Parse(s)
	return err == nil
}

package atom

import (
	"fmt"
	"regexp"
)

// CPV represents a versioned category/package atom, e.g. "dev-python/requests-2.31.0".
type CPV struct {
	Category string
	Package  string
	Version  string
	Revision int // 0 when no -rN suffix is present
}

var cpvRe = regexp.MustCompile(`^([a-z0-9][a-z0-9+_.-]*)/([a-zA-Z0-9+_-]+?)-([0-9][0-9a-z._]*)(?:-r([0-9]+))?$`)

// ParseCPV parses a "category/package-version[-rN]" string.
func ParseCPV(s string) (CPV, error) {
	matches := cpvRe.FindStringSubmatch(s)
	if matches == nil {
		return CPV{}, fmt.Errorf("malformed atom %q", s)
	}

	cpv := CPV{
		Category: matches[1],
		Package:  matches[2],
		Version:  matches[3],
	}
	if matches[4] != "" {
		// cpvRe guarantees digits only
		fmt.Sscanf(matches[4], "%d", &cpv.Revision)
	}
	return cpv, nil
}

// String returns the canonical "category/package-version[-rN]" form.
func (c CPV) String() string {
	if c.Revision > 0 {
		return fmt.Sprintf("%s/%s-%s-r%d", c.Category, c.Package, c.Version, c.Revision)
	}
	return fmt.Sprintf("%s/%s-%s", c.Category, c.Package, c.Version)
}

// PN returns the unversioned "category/package" form.
func (c CPV) PN() string {
	return c.Category + "/" + c.Package
}

// Compare orders two CPVs by version, then revision. The receiver and
// argument are assumed to name the same package.
func (c CPV) Compare(other CPV) int {
	if cmp := CompareVersions(c.Version, other.Version); cmp != 0 {
		return cmp
	}
	switch {
	case c.Revision < other.Revision:
		return -1
	case c.Revision > other.Revision:
		return 1
	}
	return 0
}

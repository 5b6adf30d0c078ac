package atom

import (
	"strconv"
	"strings"
)

// CompareVersions compares two Gentoo-style version strings component-wise.
// Returns -1, 0, or 1. Letter suffixes on the final component (1.0b) sort
// after the bare number; anything unparseable compares as zero.
func CompareVersions(a, b string) int {
	aParts, aSuf := splitVersion(a)
	bParts, bSuf := splitVersion(b)

	maxLen := len(aParts)
	if len(bParts) > maxLen {
		maxLen = len(bParts)
	}

	for i := 0; i < maxLen; i++ {
		aVal := 0
		bVal := 0
		if i < len(aParts) {
			aVal = aParts[i]
		}
		if i < len(bParts) {
			bVal = bParts[i]
		}
		if aVal < bVal {
			return -1
		}
		if aVal > bVal {
			return 1
		}
	}

	return strings.Compare(aSuf, bSuf)
}

// splitVersion converts a version string into numeric components plus any
// trailing letter suffix on the last component.
func splitVersion(v string) ([]int, string) {
	v = strings.TrimPrefix(v, "v")
	if v == "" {
		return []int{0}, ""
	}

	parts := strings.Split(v, ".")
	result := make([]int, 0, len(parts))
	suffix := ""
	for i, p := range parts {
		if i == len(parts)-1 {
			// peel off a letter suffix like the "b" in 1.0b
			j := 0
			for j < len(p) && p[j] >= '0' && p[j] <= '9' {
				j++
			}
			suffix = p[j:]
			p = p[:j]
		}
		n, _ := strconv.Atoi(p)
		result = append(result, n)
	}
	return result, suffix
}

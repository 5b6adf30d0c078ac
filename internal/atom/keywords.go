package atom

import "strings"

// KeywordStable reports whether a KEYWORDS token names a stable arch
// (no ~ testing prefix, not masked with - and not the ban token -*).
func KeywordStable(kw string) bool {
	return kw != "" && !strings.HasPrefix(kw, "~") && !strings.HasPrefix(kw, "-")
}

// KeywordTesting reports whether a KEYWORDS token is a ~arch testing keyword.
func KeywordTesting(kw string) bool {
	return strings.HasPrefix(kw, "~")
}

// KeywordArch strips the ~ prefix from a testing keyword, returning the arch.
func KeywordArch(kw string) string {
	return strings.TrimPrefix(kw, "~")
}

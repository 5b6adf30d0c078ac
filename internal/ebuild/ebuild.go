package ebuild

import (
	"strings"

	"ebuildkit/internal/atom"
)

// Ebuild represents the parsed metadata of a single ebuild file.
type Ebuild struct {
	CPV  atom.CPV
	Path string

	EAPI         string
	Description  string
	Homepage     string
	Slot         string
	License      string
	Keywords     []string
	IUSE         []string
	PythonCompat []string
	Inherits     []string

	// Vars holds every simple KEY="value" assignment as written.
	Vars map[string]string
}

// HasStableKeyword reports whether any KEYWORDS entry is stable.
func (e *Ebuild) HasStableKeyword() bool {
	for _, kw := range e.Keywords {
		if atom.KeywordStable(kw) {
			return true
		}
	}
	return false
}

// HasTestingKeyword reports whether any KEYWORDS entry is ~arch.
func (e *Ebuild) HasTestingKeyword() bool {
	for _, kw := range e.Keywords {
		if atom.KeywordTesting(kw) {
			return true
		}
	}
	return false
}

// Inherited reports whether the ebuild inherits the named eclass.
func (e *Ebuild) Inherited(eclass string) bool {
	for _, ec := range e.Inherits {
		if ec == eclass {
			return true
		}
	}
	return false
}

func splitList(v string) []string {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

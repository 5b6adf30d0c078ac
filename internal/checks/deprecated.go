package checks

import (
	"fmt"
	"sort"
	"strings"

	"ebuildkit/internal/index"
	"ebuildkit/internal/repo"
	"ebuildkit/internal/report"
)

// DeprecatedEclassCheck reports ebuilds inheriting deprecated eclasses.
type DeprecatedEclassCheck struct {
	DB *index.EclassDB
}

func (c *DeprecatedEclassCheck) Name() string { return "DeprecatedEclass" }

func (c *DeprecatedEclassCheck) Run(pkg *repo.Package) []report.Result {
	var results []report.Result
	for _, e := range pkg.Ebuilds {
		var hits []string
		for _, ec := range e.Inherits {
			replacement, deprecated := c.DB.Lookup(ec)
			if !deprecated {
				continue
			}
			if replacement == "" {
				hits = append(hits, fmt.Sprintf("%s (no replacement)", ec))
			} else {
				hits = append(hits, fmt.Sprintf("%s (migrate to %s)", ec, replacement))
			}
		}
		if len(hits) == 0 {
			continue
		}
		sort.Strings(hits)
		results = append(results, report.Result{
			Atom:     e.CPV.String(),
			Check:    c.Name(),
			Severity: report.Warning,
			Message:  "deprecated eclass(es): " + strings.Join(hits, ", "),
		})
	}
	return results
}

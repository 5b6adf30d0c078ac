// Package checks implements QA checks run against the packages of an
// ebuild repository.
package checks

import (
	"ebuildkit/internal/repo"
	"ebuildkit/internal/report"
)

// Check inspects one package (all its versions) and reports findings.
type Check interface {
	Name() string
	Run(pkg *repo.Package) []report.Result
}

package checks

import (
	"fmt"

	"ebuildkit/internal/pyimpl"
	"ebuildkit/internal/repo"
	"ebuildkit/internal/report"
)

// pythonEclasses are the eclasses whose consumers must set PYTHON_COMPAT.
var pythonEclasses = []string{"python-r1", "python-single-r1", "python-any-r1", "distutils-r1"}

// PythonCompatCheck validates PYTHON_COMPAT entries: every token must be a
// well-formed interpreter identifier naming a currently targeted
// implementation, and python eclass consumers must declare the variable.
type PythonCompatCheck struct{}

func (c *PythonCompatCheck) Name() string { return "PythonCompat" }

func (c *PythonCompatCheck) Run(pkg *repo.Package) []report.Result {
	var results []report.Result
	for _, e := range pkg.Ebuilds {
		usesPython := false
		for _, ec := range pythonEclasses {
			if e.Inherited(ec) {
				usesPython = true
				break
			}
		}

		if usesPython && len(e.PythonCompat) == 0 {
			results = append(results, report.Result{
				Atom:     e.CPV.String(),
				Check:    c.Name(),
				Severity: report.Error,
				Message:  "inherits a python eclass but sets no PYTHON_COMPAT",
			})
			continue
		}

		for _, token := range e.PythonCompat {
			impl, err := pyimpl.Parse(token)
			if err != nil {
				results = append(results, report.Result{
					Atom:     e.CPV.String(),
					Check:    c.Name(),
					Severity: report.Error,
					Message:  fmt.Sprintf("malformed PYTHON_COMPAT entry %q", token),
				})
				continue
			}
			if !impl.Supported() {
				results = append(results, report.Result{
					Atom:     e.CPV.String(),
					Check:    c.Name(),
					Severity: report.Warning,
					Message:  fmt.Sprintf("PYTHON_COMPAT targets retired implementation %q", token),
				})
			}
		}
	}
	return results
}

// Package eclass derives the interpreter-compatibility declaration an ebuild
// exposes to the package manager: one USE flag per supported interpreter, a
// dependency expression requiring at least one matching runtime, the
// comma-joined use-dependency qualifier, and the REQUIRED_USE constraint.
package eclass

import (
	"strings"

	"ebuildkit/internal/depend"
	"ebuildkit/internal/pyimpl"
)

// Declaration holds the four outputs derived from a compatibility list.
// It is a pure value: callers keep it in their own scope, nothing here
// touches process-wide state.
type Declaration struct {
	// Flags are the USE flag names, one per identifier, in input order.
	Flags []string
	// Deps requires at least one flag-conditional runtime dependency.
	Deps depend.Expr
	// RequiredUse requires at least one of Flags to be enabled.
	RequiredUse depend.Expr
	// UseDep is Flags joined with commas, input order preserved. Order is
	// significant downstream, where it feeds dependency matching.
	UseDep string
}

// Declare builds the Declaration for an ordered compatibility list. Every
// identifier must be a recognized interpreter token; the first malformed one
// aborts with pyimpl.ErrMalformedIdentifier before any output is produced.
// An empty list yields a Declaration whose rendered forms are all empty.
func Declare(identifiers []string) (*Declaration, error) {
	impls, err := pyimpl.ParseAll(identifiers)
	if err != nil {
		return nil, err
	}

	d := &Declaration{
		Flags: make([]string, 0, len(impls)),
	}
	deps := depend.AnyOf{}
	required := depend.AnyOf{}

	for _, impl := range impls {
		flag := impl.Flag()
		d.Flags = append(d.Flags, flag)
		required.Children = append(required.Children, depend.Flag(flag))

		slot := impl.Slot
		if impl.PyPy() && slot == "0" {
			slot = "="
		}
		deps.Children = append(deps.Children, depend.UseConditional{
			Flag: flag,
			Children: []depend.Expr{
				depend.Atom{Package: impl.RuntimePackage(), Slot: slot},
			},
		})
	}

	d.Deps = deps
	d.RequiredUse = required
	d.UseDep = strings.Join(d.Flags, ",")
	return d, nil
}

// DepString renders the runtime dependency expression.
func (d *Declaration) DepString() string { return d.Deps.Render() }

// RequiredUseString renders the REQUIRED_USE constraint.
func (d *Declaration) RequiredUseString() string { return d.RequiredUse.Render() }

// IUSE renders the flag set as a space-joined IUSE value, input order.
func (d *Declaration) IUSE() string { return strings.Join(d.Flags, " ") }

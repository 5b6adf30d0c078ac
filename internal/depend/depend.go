// Package depend models dependency and USE-constraint expressions as small
// trees, rendered to the textual portage form only at the output boundary.
package depend

import "strings"

// Expr is a node in a dependency or USE-constraint expression.
type Expr interface {
	// Render writes the node in portage syntax. Empty group nodes render
	// to the empty string.
	Render() string
}

// Atom is a dependency on a package, optionally pinned to a slot and
// qualified with a use-dependency suffix.
type Atom struct {
	Package string // "dev-lang/python"
	Slot    string // "3.10", "=" for slot-operator rebuilds, "" for none
	UseDep  string // rendered as [UseDep] when non-empty
}

func (a Atom) Render() string {
	var b strings.Builder
	b.WriteString(a.Package)
	if a.Slot != "" {
		b.WriteByte(':')
		b.WriteString(a.Slot)
	}
	if a.UseDep != "" {
		b.WriteByte('[')
		b.WriteString(a.UseDep)
		b.WriteByte(']')
	}
	return b.String()
}

// Flag is a bare USE flag reference, used in REQUIRED_USE expressions.
type Flag string

func (f Flag) Render() string { return string(f) }

// UseConditional guards children behind a USE flag: "flag? ( ... )".
type UseConditional struct {
	Flag     string
	Children []Expr
}

func (u UseConditional) Render() string {
	inner := renderAll(u.Children)
	if inner == "" {
		return ""
	}
	return u.Flag + "? ( " + inner + " )"
}

// AnyOf requires at least one child to be satisfied: "|| ( ... )".
// With no children it renders to the empty string.
type AnyOf struct {
	Children []Expr
}

func (a AnyOf) Render() string {
	inner := renderAll(a.Children)
	if inner == "" {
		return ""
	}
	return "|| ( " + inner + " )"
}

// AllOf is a plain conjunction, rendered as its children joined by spaces.
type AllOf struct {
	Children []Expr
}

func (a AllOf) Render() string { return renderAll(a.Children) }

func renderAll(children []Expr) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		if s := c.Render(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

package ebuild

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ebuildkit/internal/atom"
	"ebuildkit/internal/eclass"
)

const gentooHeader = `# Copyright 1999-2026 Gentoo Authors
# Distributed under the terms of the GNU General Public License v2
`

// StubOptions are the knobs for WriteStub beyond the defaulted metadata.
type StubOptions struct {
	EAPI         string
	Description  string
	Homepage     string
	Slot         string
	License      string
	Keywords     []string
	IUSE         []string
	PythonCompat []string
	Inherits     []string
	Vars         map[string]string
	// GentooHeader prepends the standard copyright header.
	GentooHeader bool
}

func (o *StubOptions) defaults() {
	if o.EAPI == "" {
		o.EAPI = "8"
	}
	if o.Slot == "" {
		o.Slot = "0"
	}
	if o.Description == "" {
		o.Description = "stub package description"
	}
	if o.Homepage == "" {
		o.Homepage = "https://example.org/stub"
	}
	if o.License == "" {
		o.License = "blank"
	}
}

// WriteStub creates category/package/package-version.ebuild under root,
// filling unset metadata with defaults.
func WriteStub(root string, cpv atom.CPV, opts StubOptions) (string, error) {
	opts.defaults()

	dir := filepath.Join(root, cpv.Category, cpv.Package)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating package directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s", cpv.Package, cpv.Version)
	if cpv.Revision > 0 {
		name = fmt.Sprintf("%s-r%d", name, cpv.Revision)
	}
	path := filepath.Join(dir, name+".ebuild")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating ebuild: %w", err)
	}
	defer f.Close()

	if err := writeStub(f, opts); err != nil {
		return "", fmt.Errorf("writing ebuild: %w", err)
	}
	return path, nil
}

func writeStub(w io.Writer, opts StubOptions) error {
	var b strings.Builder

	if opts.GentooHeader {
		b.WriteString(gentooHeader)
	}
	fmt.Fprintf(&b, "EAPI=%q\n", opts.EAPI)
	if len(opts.Inherits) > 0 {
		fmt.Fprintf(&b, "inherit %s\n", strings.Join(opts.Inherits, " "))
	}
	if len(opts.PythonCompat) > 0 {
		fmt.Fprintf(&b, "PYTHON_COMPAT=( %s )\n", strings.Join(opts.PythonCompat, " "))
	}
	fmt.Fprintf(&b, "DESCRIPTION=%q\n", opts.Description)
	fmt.Fprintf(&b, "HOMEPAGE=%q\n", opts.Homepage)
	fmt.Fprintf(&b, "SLOT=%q\n", opts.Slot)
	fmt.Fprintf(&b, "LICENSE=%q\n", opts.License)
	if len(opts.Keywords) > 0 {
		fmt.Fprintf(&b, "KEYWORDS=%q\n", strings.Join(opts.Keywords, " "))
	}
	if len(opts.IUSE) > 0 {
		fmt.Fprintf(&b, "IUSE=%q\n", strings.Join(opts.IUSE, " "))
	}

	keys := make([]string, 0, len(opts.Vars))
	for k := range opts.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%q\n", k, opts.Vars[k])
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// EmitDeclaration writes the variable block an ebuild gains from a
// compatibility declaration.
func EmitDeclaration(w io.Writer, compat []string, d *eclass.Declaration) error {
	var b strings.Builder

	if len(compat) > 0 {
		fmt.Fprintf(&b, "PYTHON_COMPAT=( %s )\n", strings.Join(compat, " "))
	}
	fmt.Fprintf(&b, "IUSE=%q\n", d.IUSE())
	fmt.Fprintf(&b, "REQUIRED_USE=%q\n", d.RequiredUseString())
	fmt.Fprintf(&b, "RDEPEND=%q\n", d.DepString())
	fmt.Fprintf(&b, "PYTHON_USEDEP=%q\n", d.UseDep)

	_, err := io.WriteString(w, b.String())
	return err
}

// Package repo models an ebuild repository on disk: the profiles/ and
// metadata/ skeleton plus the category/package/version tree of ebuilds.
package repo

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ebuildkit/internal/ebuild"
)

// Repo is an opened ebuild repository.
type Repo struct {
	Path    string
	Name    string
	Masters []string
}

// Package groups the versioned ebuilds of one category/package.
type Package struct {
	Category string
	Name     string
	Ebuilds  []*ebuild.Ebuild // sorted oldest to newest
}

// Atom returns the unversioned "category/name" form.
func (p *Package) Atom() string {
	return p.Category + "/" + p.Name
}

// Init creates a repository skeleton: repo_name, layout.conf, arch.list and
// a blank license, then opens it. Existing files are left untouched.
func Init(path, name string, masters, arches []string) (*Repo, error) {
	profiles := filepath.Join(path, "profiles")
	metadata := filepath.Join(path, "metadata")
	licenses := filepath.Join(path, "licenses")
	for _, dir := range []string{profiles, metadata, licenses} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	if err := writeIfMissing(filepath.Join(profiles, "repo_name"), name+"\n"); err != nil {
		return nil, err
	}
	layout := fmt.Sprintf("masters = %s\ncache-formats =\nthin-manifests = true\n", strings.Join(masters, " "))
	if err := writeIfMissing(filepath.Join(metadata, "layout.conf"), layout); err != nil {
		return nil, err
	}
	if err := writeIfMissing(filepath.Join(profiles, "arch.list"), strings.Join(arches, "\n")+"\n"); err != nil {
		return nil, err
	}
	if err := writeIfMissing(filepath.Join(licenses, "blank"), ""); err != nil {
		return nil, err
	}

	return Open(path)
}

// Open reads the repository name and masters from an existing tree.
func Open(path string) (*Repo, error) {
	r := &Repo{Path: path}

	nameBytes, err := os.ReadFile(filepath.Join(path, "profiles", "repo_name"))
	if err != nil {
		return nil, fmt.Errorf("reading repo_name: %w", err)
	}
	r.Name = strings.TrimSpace(string(nameBytes))

	layout, err := os.Open(filepath.Join(path, "metadata", "layout.conf"))
	if err == nil {
		defer layout.Close()
		scanner := bufio.NewScanner(layout)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if after, ok := strings.CutPrefix(line, "masters"); ok {
				after = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(after), "="))
				r.Masters = strings.Fields(after)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading layout.conf: %w", err)
		}
	}

	return r, nil
}

// skipDirs are top-level entries that never contain packages.
var skipDirs = map[string]bool{
	"profiles": true, "metadata": true, "licenses": true,
	"eclass": true, "distfiles": true, ".git": true,
}

// Packages walks the category tree and parses every ebuild, returning
// packages sorted by atom with versions sorted oldest to newest.
func (r *Repo) Packages() ([]*Package, error) {
	entries, err := os.ReadDir(r.Path)
	if err != nil {
		return nil, fmt.Errorf("reading repo: %w", err)
	}

	var pkgs []*Package
	for _, cat := range entries {
		if !cat.IsDir() || skipDirs[cat.Name()] {
			continue
		}
		catPath := filepath.Join(r.Path, cat.Name())
		pkgDirs, err := os.ReadDir(catPath)
		if err != nil {
			return nil, fmt.Errorf("reading category %s: %w", cat.Name(), err)
		}
		for _, pd := range pkgDirs {
			if !pd.IsDir() {
				continue
			}
			pkg, err := r.loadPackage(cat.Name(), pd.Name())
			if err != nil {
				return nil, err
			}
			if pkg != nil {
				pkgs = append(pkgs, pkg)
			}
		}
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Atom() < pkgs[j].Atom() })
	return pkgs, nil
}

func (r *Repo) loadPackage(category, name string) (*Package, error) {
	dir := filepath.Join(r.Path, category, name)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading package %s/%s: %w", category, name, err)
	}

	pkg := &Package{Category: category, Name: name}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".ebuild") {
			continue
		}
		e, err := ebuild.Parse(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}
		pkg.Ebuilds = append(pkg.Ebuilds, e)
	}
	if len(pkg.Ebuilds) == 0 {
		return nil, nil
	}

	sort.Slice(pkg.Ebuilds, func(i, j int) bool {
		return pkg.Ebuilds[i].CPV.Compare(pkg.Ebuilds[j].CPV) < 0
	})
	return pkg, nil
}

func writeIfMissing(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

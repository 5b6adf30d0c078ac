package ebuild

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"ebuildkit/internal/atom"
)

var (
	assignRe     = regexp.MustCompile(`^([A-Z_][A-Z0-9_]*)="([^"]*)"\s*$`)
	arrayOpenRe  = regexp.MustCompile(`^([A-Z_][A-Z0-9_]*)=\(\s*(.*?)\s*(\))?\s*$`)
	inheritRe    = regexp.MustCompile(`^inherit\s+(.+)$`)
	arrayCloseRe = regexp.MustCompile(`^\s*\)\s*$`)
)

// Parse reads an ebuild file. The CPV is derived from the surrounding
// category/package directory layout and the file name.
func Parse(path string) (*Ebuild, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ebuild: %w", err)
	}
	defer file.Close()

	cpv, err := cpvFromPath(path)
	if err != nil {
		return nil, err
	}

	e := &Ebuild{
		CPV:  cpv,
		Path: path,
		Vars: make(map[string]string),
	}

	var arrayKey string
	var arrayVals []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		// Accumulating a multi-line array value
		if arrayKey != "" {
			if arrayCloseRe.MatchString(line) {
				e.setArray(arrayKey, arrayVals)
				arrayKey = ""
				arrayVals = nil
				continue
			}
			arrayVals = append(arrayVals, strings.Fields(line)...)
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if matches := inheritRe.FindStringSubmatch(trimmed); matches != nil {
			e.Inherits = append(e.Inherits, strings.Fields(matches[1])...)
			continue
		}

		if matches := arrayOpenRe.FindStringSubmatch(trimmed); matches != nil {
			vals := strings.Fields(matches[2])
			if matches[3] != "" {
				e.setArray(matches[1], vals)
			} else {
				arrayKey = matches[1]
				arrayVals = vals
			}
			continue
		}

		if matches := assignRe.FindStringSubmatch(trimmed); matches != nil {
			e.setVar(matches[1], matches[2])
			continue
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ebuild: %w", err)
	}
	if arrayKey != "" {
		return nil, fmt.Errorf("unterminated array %s in %s", arrayKey, path)
	}

	return e, nil
}

func (e *Ebuild) setVar(key, value string) {
	e.Vars[key] = value
	switch key {
	case "EAPI":
		e.EAPI = value
	case "DESCRIPTION":
		e.Description = value
	case "HOMEPAGE":
		e.Homepage = value
	case "SLOT":
		e.Slot = value
	case "LICENSE":
		e.License = value
	case "KEYWORDS":
		e.Keywords = splitList(value)
	case "IUSE":
		e.IUSE = splitList(value)
	case "PYTHON_COMPAT":
		e.PythonCompat = splitList(value)
	}
}

func (e *Ebuild) setArray(key string, vals []string) {
	e.Vars[key] = strings.Join(vals, " ")
	if key == "PYTHON_COMPAT" {
		e.PythonCompat = vals
	}
}

// cpvFromPath derives "cat/pkg-ver" from ".../cat/pkg/pkg-ver.ebuild".
func cpvFromPath(path string) (atom.CPV, error) {
	base := strings.TrimSuffix(filepath.Base(path), ".ebuild")
	category := filepath.Base(filepath.Dir(filepath.Dir(path)))
	return atom.ParseCPV(category + "/" + base)
}

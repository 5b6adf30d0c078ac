package checks

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ebuildkit/internal/repo"
	"ebuildkit/internal/report"
)

// DefaultStableDays is how long a ~arch-only version must sit in the tree
// before a stabilization request is suggested.
const DefaultStableDays = 30

// StableRequestCheck flags versions newer than the latest stable one that
// have carried only ~arch keywords for at least Days days.
type StableRequestCheck struct {
	Days int
	// Today anchors age computation; overridable for deterministic tests.
	Today time.Time
	// AddedAt reports when an ebuild entered the tree. Defaults to the git
	// commit time of the file's addition, falling back to its mtime.
	AddedAt func(path string) (time.Time, error)
}

// NewStableRequestCheck creates the check with default thresholds.
func NewStableRequestCheck(days int) *StableRequestCheck {
	if days <= 0 {
		days = DefaultStableDays
	}
	return &StableRequestCheck{
		Days:    days,
		Today:   time.Now(),
		AddedAt: addedAt,
	}
}

func (c *StableRequestCheck) Name() string { return "StableRequest" }

func (c *StableRequestCheck) Run(pkg *repo.Package) []report.Result {
	// find the newest version carrying a stable keyword
	lastStable := -1
	for i, e := range pkg.Ebuilds {
		if e.HasStableKeyword() {
			lastStable = i
		}
	}
	if lastStable == -1 {
		// nothing stable yet, nothing to request against
		return nil
	}

	var results []report.Result
	for _, e := range pkg.Ebuilds[lastStable+1:] {
		if !e.HasTestingKeyword() || e.HasStableKeyword() {
			continue
		}
		added, err := c.AddedAt(e.Path)
		if err != nil {
			continue
		}
		days := int(c.Today.Sub(added).Hours() / 24)
		if days < c.Days {
			continue
		}
		results = append(results, report.Result{
			Atom:     e.CPV.String(),
			Check:    c.Name(),
			Severity: report.Info,
			Message:  fmt.Sprintf("version %s pending stabilization for %d days", e.CPV.Version, days),
		})
	}
	return results
}

// addedAt asks git when the file was added; outside a work tree (or without
// git) the file mtime stands in.
func addedAt(path string) (time.Time, error) {
	dir := filepath.Dir(path)
	cmd := exec.Command("git", "-C", dir, "log", "--diff-filter=A",
		"--format=%ct", "--", filepath.Base(path))
	out, err := cmd.Output()
	if err == nil {
		lines := strings.Fields(strings.TrimSpace(string(out)))
		if len(lines) > 0 {
			// oldest addition is the last line
			if secs, err := strconv.ParseInt(lines[len(lines)-1], 10, 64); err == nil {
				return time.Unix(secs, 0), nil
			}
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

package index

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultDBPath = "metadata/deprecated-eclasses.txt"
	cacheTTL      = 24 * time.Hour
)

// EclassDB maps deprecated eclass names to their replacements ("" when the
// eclass was removed without one). It starts from the bundled defaults and
// can refresh itself from a remote index with an on-disk cache.
type EclassDB struct {
	mirror    string
	cacheDir  string
	cacheFile string
	entries   map[string]string
}

// builtinDeprecated seeds the database so lookups work offline.
var builtinDeprecated = map[string]string{
	"distutils":     "distutils-r1",
	"python":        "python-r1",
	"python-single": "python-single-r1",
	"games":         "",
	"versionator":   "ver_test from eapi7-ver",
	"eutils":        "",
	"epatch":        "eapply from EAPI 6",
	"ltprune":       "",
	"user":          "GLEP 81 acct-* packages",
	"multilib":      "",
}

// NewEclassDB creates a database backed by the given mirror and cache dir.
// An empty mirror disables refresh; the bundled defaults still apply.
func NewEclassDB(mirror, cacheDir string) *EclassDB {
	entries := make(map[string]string, len(builtinDeprecated))
	for k, v := range builtinDeprecated {
		entries[k] = v
	}
	return &EclassDB{
		mirror:    strings.TrimSuffix(mirror, "/"),
		cacheDir:  cacheDir,
		cacheFile: filepath.Join(cacheDir, "deprecated-eclasses.txt"),
		entries:   entries,
	}
}

// Load refreshes the database from the mirror, reusing the on-disk cache
// while it is fresh. Without a mirror it is a no-op.
func (db *EclassDB) Load() error {
	if db.mirror == "" {
		return nil
	}
	if err := os.MkdirAll(db.cacheDir, 0755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	if !db.isCacheValid() {
		if err := db.download(); err != nil {
			return err
		}
	}
	return db.parseCache()
}

func (db *EclassDB) isCacheValid() bool {
	info, err := os.Stat(db.cacheFile)
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) < cacheTTL
}

func (db *EclassDB) download() error {
	url := fmt.Sprintf("%s/%s", db.mirror, defaultDBPath)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("downloading eclass db: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading eclass db: HTTP %d", resp.StatusCode)
	}

	outFile, err := os.Create(db.cacheFile)
	if err != nil {
		return fmt.Errorf("creating cache file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	return nil
}

// parseCache reads "eclass<TAB>replacement" lines; a replacement of "-"
// means removed without replacement. Comments and blanks are skipped.
func (db *EclassDB) parseCache() error {
	file, err := os.Open(db.cacheFile)
	if err != nil {
		return fmt.Errorf("opening cache file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		replacement := ""
		if len(fields) > 1 && fields[1] != "-" {
			replacement = strings.Join(fields[1:], " ")
		}
		db.entries[fields[0]] = replacement
	}
	return scanner.Err()
}

// Lookup reports whether the eclass is deprecated and what replaces it.
func (db *EclassDB) Lookup(eclass string) (replacement string, deprecated bool) {
	replacement, deprecated = db.entries[eclass]
	return replacement, deprecated
}

// Deprecated returns all deprecated eclass names (unsorted).
func (db *EclassDB) Deprecated() []string {
	names := make([]string, 0, len(db.entries))
	for name := range db.entries {
		names = append(names, name)
	}
	return names
}

package checks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebuildkit/internal/atom"
	"ebuildkit/internal/ebuild"
	"ebuildkit/internal/repo"
)

func mkVersionedPkg(t *testing.T, pn string, versions map[string][]string) *repo.Package {
	t.Helper()
	pkg := &repo.Package{}
	for v, keywords := range versions {
		cpv, err := atom.ParseCPV(pn + "-" + v)
		require.NoError(t, err)
		pkg.Category = cpv.Category
		pkg.Name = cpv.Package
		pkg.Ebuilds = append(pkg.Ebuilds, &ebuild.Ebuild{
			CPV:      cpv,
			Path:     "/fake/" + cpv.String() + ".ebuild",
			Keywords: keywords,
		})
	}
	// oldest first, as repo.Packages guarantees
	for i := 0; i < len(pkg.Ebuilds); i++ {
		for j := i + 1; j < len(pkg.Ebuilds); j++ {
			if pkg.Ebuilds[j].CPV.Compare(pkg.Ebuilds[i].CPV) < 0 {
				pkg.Ebuilds[i], pkg.Ebuilds[j] = pkg.Ebuilds[j], pkg.Ebuilds[i]
			}
		}
	}
	return pkg
}

func newTestCheck(added time.Time, future int) *StableRequestCheck {
	c := NewStableRequestCheck(0)
	c.Today = added.AddDate(0, 0, future)
	c.AddedAt = func(string) (time.Time, error) { return added, nil }
	return c
}

func TestStableRequestCheck(t *testing.T) {
	added := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no stable keywords anywhere", func(t *testing.T) {
		pkg := mkVersionedPkg(t, "cat/pkg", map[string][]string{
			"1": {"~amd64"},
			"2": {"~amd64"},
		})
		check := newTestCheck(added, 40)
		assert.Empty(t, check.Run(pkg))
	})

	t.Run("not old enough", func(t *testing.T) {
		pkg := mkVersionedPkg(t, "cat/pkg", map[string][]string{
			"1": {"amd64"},
			"2": {"~amd64"},
		})
		for _, days := range []int{0, 1, 10, 20, 29} {
			check := newTestCheck(added, days)
			assert.Empty(t, check.Run(pkg), "future=%d", days)
		}
	})

	t.Run("thirty days old", func(t *testing.T) {
		pkg := mkVersionedPkg(t, "cat/pkg", map[string][]string{
			"1": {"amd64"},
			"2": {"~amd64"},
		})
		check := newTestCheck(added, 30)
		results := check.Run(pkg)
		require.Len(t, results, 1)
		assert.Equal(t, "cat/pkg-2", results[0].Atom)
		assert.Contains(t, results[0].Message, "30 days")
	})

	t.Run("versions behind the stable one ignored", func(t *testing.T) {
		pkg := mkVersionedPkg(t, "cat/pkg", map[string][]string{
			"1": {"~amd64"},
			"2": {"amd64"},
		})
		check := newTestCheck(added, 60)
		assert.Empty(t, check.Run(pkg))
	})

	t.Run("age lookup failure skips version", func(t *testing.T) {
		pkg := mkVersionedPkg(t, "cat/pkg", map[string][]string{
			"1": {"amd64"},
			"2": {"~amd64"},
		})
		check := NewStableRequestCheck(30)
		check.AddedAt = func(string) (time.Time, error) {
			return time.Time{}, assert.AnError
		}
		assert.Empty(t, check.Run(pkg))
	})
}

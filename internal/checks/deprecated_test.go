package checks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebuildkit/internal/atom"
	"ebuildkit/internal/ebuild"
	"ebuildkit/internal/index"
	"ebuildkit/internal/repo"
)

func mkPkg(t *testing.T, cpvStr string, mutate func(e *ebuild.Ebuild)) *repo.Package {
	t.Helper()
	cpv, err := atom.ParseCPV(cpvStr)
	require.NoError(t, err)
	e := &ebuild.Ebuild{CPV: cpv, Vars: map[string]string{}}
	if mutate != nil {
		mutate(e)
	}
	return &repo.Package{
		Category: cpv.Category,
		Name:     cpv.Package,
		Ebuilds:  []*ebuild.Ebuild{e},
	}
}

func TestDeprecatedEclassCheck(t *testing.T) {
	db := index.NewEclassDB("", "")
	check := &DeprecatedEclassCheck{DB: db}

	t.Run("no eclasses", func(t *testing.T) {
		pkg := mkPkg(t, "dev-util/diffball-0.7.1", nil)
		assert.Empty(t, check.Run(pkg))
	})

	t.Run("non-deprecated eclass", func(t *testing.T) {
		pkg := mkPkg(t, "dev-util/diffball-0.7.1", func(e *ebuild.Ebuild) {
			e.Inherits = []string{"toolchain-funcs"}
		})
		assert.Empty(t, check.Run(pkg))
	})

	t.Run("one deprecated eclass", func(t *testing.T) {
		pkg := mkPkg(t, "dev-util/diffball-0.1", func(e *ebuild.Ebuild) {
			e.Inherits = []string{"versionator"}
		})
		results := check.Run(pkg)
		require.Len(t, results, 1)
		assert.Equal(t, "DeprecatedEclass", results[0].Check)
		assert.Equal(t, "dev-util/diffball-0.1", results[0].Atom)
		assert.Contains(t, results[0].Message, "versionator")
		assert.Contains(t, results[0].Message, "ver_test from eapi7-ver")
	})

	t.Run("deprecated without replacement", func(t *testing.T) {
		pkg := mkPkg(t, "dev-util/diffball-0.1", func(e *ebuild.Ebuild) {
			e.Inherits = []string{"games"}
		})
		results := check.Run(pkg)
		require.Len(t, results, 1)
		assert.Contains(t, results[0].Message, "games (no replacement)")
	})

	t.Run("mixed eclasses reported sorted", func(t *testing.T) {
		pkg := mkPkg(t, "dev-util/diffball-0.1", func(e *ebuild.Ebuild) {
			e.Inherits = []string{"versionator", "toolchain-funcs", "games"}
		})
		results := check.Run(pkg)
		require.Len(t, results, 1)
		msg := results[0].Message
		assert.Less(t, strings.Index(msg, "games"), strings.Index(msg, "versionator"))
		assert.NotContains(t, msg, "toolchain-funcs")
	})
}

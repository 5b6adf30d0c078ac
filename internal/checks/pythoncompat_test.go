package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebuildkit/internal/ebuild"
	"ebuildkit/internal/report"
)

func TestPythonCompatCheck(t *testing.T) {
	check := &PythonCompatCheck{}

	t.Run("non-python package ignored", func(t *testing.T) {
		pkg := mkPkg(t, "sys-apps/tool-1.0", func(e *ebuild.Ebuild) {
			e.Inherits = []string{"cmake"}
		})
		assert.Empty(t, check.Run(pkg))
	})

	t.Run("python eclass without compat", func(t *testing.T) {
		pkg := mkPkg(t, "dev-python/pkg-1.0", func(e *ebuild.Ebuild) {
			e.Inherits = []string{"distutils-r1"}
		})
		results := check.Run(pkg)
		require.Len(t, results, 1)
		assert.Equal(t, report.Error, results[0].Severity)
		assert.Contains(t, results[0].Message, "no PYTHON_COMPAT")
	})

	t.Run("valid compat", func(t *testing.T) {
		pkg := mkPkg(t, "dev-python/pkg-1.0", func(e *ebuild.Ebuild) {
			e.Inherits = []string{"python-r1"}
			e.PythonCompat = []string{"python3_11", "python3_12", "pypy3"}
		})
		assert.Empty(t, check.Run(pkg))
	})

	t.Run("malformed token", func(t *testing.T) {
		pkg := mkPkg(t, "dev-python/pkg-1.0", func(e *ebuild.Ebuild) {
			e.Inherits = []string{"python-r1"}
			e.PythonCompat = []string{"python3_11", "nodejs20"}
		})
		results := check.Run(pkg)
		require.Len(t, results, 1)
		assert.Equal(t, report.Error, results[0].Severity)
		assert.Contains(t, results[0].Message, `"nodejs20"`)
	})

	t.Run("retired implementation", func(t *testing.T) {
		pkg := mkPkg(t, "dev-python/pkg-1.0", func(e *ebuild.Ebuild) {
			e.Inherits = []string{"python-r1"}
			e.PythonCompat = []string{"python2_7", "python3_11"}
		})
		results := check.Run(pkg)
		require.Len(t, results, 1)
		assert.Equal(t, report.Warning, results[0].Severity)
		assert.Contains(t, results[0].Message, `"python2_7"`)
	})

	t.Run("compat without python eclass still validated", func(t *testing.T) {
		pkg := mkPkg(t, "dev-python/pkg-1.0", func(e *ebuild.Ebuild) {
			e.PythonCompat = []string{"bogus"}
		})
		results := check.Run(pkg)
		require.Len(t, results, 1)
		assert.Contains(t, results[0].Message, "malformed")
	})
}

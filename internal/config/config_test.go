package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
targets:
  - python3_12
  - python3_13
checks:
  - DeprecatedEclass
stable_days: 60
workers: 8
eclass_index: https://mirror.example.org
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"python3_12", "python3_13"}, cfg.Targets)
	assert.Equal(t, 60, cfg.StableDays)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "https://mirror.example.org", cfg.EclassIndex)
	assert.True(t, cfg.CheckEnabled("DeprecatedEclass"))
	assert.False(t, cfg.CheckEnabled("StableRequest"))
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"targets": ["python3_11"], "stable_days": 14}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"python3_11"}, cfg.Targets)
	assert.Equal(t, 14, cfg.StableDays)
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", `stable_days: 0`)

	cfg, err := Load(path)
	require.NoError(t, err)
	def := Default()
	assert.Equal(t, def.Targets, cfg.Targets)
	assert.Equal(t, def.StableDays, cfg.StableDays)
	assert.Equal(t, def.Workers, cfg.Workers)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, "config.yaml", "targets: [\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestCheckEnabled_EmptyMeansAll(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.CheckEnabled("anything"))
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontcheck/fontcheck/internal/adapters/outbound/config"
	"github.com/fontcheck/fontcheck/internal/domain"
)

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".fontcheck.yaml"), []byte(contents), 0o644))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRunConfig(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "autofix: true\nskip_network: true\ntool_timeout: 5s\n")

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Autofix)
	assert.True(t, cfg.SkipNetwork)
	assert.Equal(t, 5*time.Second, cfg.ToolTimeout)
	// Unset keys keep their defaults.
	assert.Equal(t, domain.DefaultRunConfig().NetworkTimeout, cfg.NetworkTimeout)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "autofix: [unclosed")

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "tool_timeout: -3s\n")

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}

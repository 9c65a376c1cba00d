package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunit-heesungyang/palette-manager/internal/colorutil"
)

// withUserConfig points the user config lookup at path for the duration of the test
func withUserConfig(t *testing.T, path string) {
	t.Helper()
	original := getUserConfigPath
	t.Cleanup(func() { getUserConfigPath = original })
	getUserConfigPath = func() (string, error) { return path, nil }
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_DefaultOnly(t *testing.T) {
	dir := t.TempDir()
	withUserConfig(t, filepath.Join(dir, "missing.yaml"))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Layering(t *testing.T) {
	dir := t.TempDir()
	userPath := filepath.Join(dir, "home", "config.yaml")
	withUserConfig(t, userPath)

	writeFile(t, userPath, "default_format: rgb\nlanguage: zh-CN\nsimilar_count: 8\n")
	writeFile(t, filepath.Join(dir, ".palette", "config.yaml"), "default_format: HSL\nauto_stage: false\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, colorutil.FormatHSL, cfg.DefaultFormat, "project overrides user")
	assert.Equal(t, "zh-CN", cfg.Language, "user value survives")
	assert.Equal(t, 8, cfg.SimilarCount)
	assert.False(t, cfg.AutoStage)
	assert.True(t, cfg.ShowColorCodes, "untouched keys keep defaults")
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	dir := t.TempDir()
	withUserConfig(t, filepath.Join(dir, "missing.yaml"))
	writeFile(t, filepath.Join(dir, ".palette", "config.yaml"),
		"default_format: cmyk\nlanguage: fr\nsimilar_count: 2000000000\nshare_base_url: ' '\nshare_max_url_length: 0\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	withUserConfig(t, filepath.Join(dir, "missing.yaml"))
	writeFile(t, filepath.Join(dir, ".palette", "config.yaml"), "language: [\n")

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_UserPathError(t *testing.T) {
	dir := t.TempDir()
	original := getUserConfigPath
	t.Cleanup(func() { getUserConfigPath = original })
	getUserConfigPath = func() (string, error) { return "", errors.New("no home") }

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	withUserConfig(t, filepath.Join(dir, "missing.yaml"))

	cfg := Default()
	cfg.DefaultFormat = colorutil.FormatHSV
	cfg.RememberFormat(colorutil.FormatRGB)
	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestRememberFormat(t *testing.T) {
	var cfg Config
	for _, f := range []colorutil.Format{"hex", "rgb", "hsl", "hsv", "css", "rgba", "rgb"} {
		cfg.RememberFormat(f)
	}
	assert.Equal(t, []colorutil.Format{"rgb", "rgba", "css", "hsv", "hsl"}, cfg.RecentFormats)
}

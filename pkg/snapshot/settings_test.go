package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsAbsent(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, settings)
	assert.True(t, settings.UseGitignore(), "defaults apply when document is absent")
}

func TestLoadSettingsMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, SettingsFileName),
		[]byte("ignore-content: [unclosed\n"), 0o644))

	_, err := LoadSettings(dir)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Path, SettingsFileName)
}

func TestLoadSettingsValues(t *testing.T) {
	dir := t.TempDir()
	doc := `gitignore-import-and-ignore: false
ignore-content:
  - "SECRET.md"
ignore-tree-and-content:
  - "*.log"
some-unknown-key: whatever
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(doc), 0o644))

	settings, err := LoadSettings(dir)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.False(t, settings.UseGitignore())
	assert.Equal(t, []string{"SECRET.md"}, settings.IgnoreContent)
	assert.Equal(t, []string{"*.log"}, settings.IgnoreTreeAndContent)
}

func TestCreateSettingsFile(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSettingsFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, SettingsFileName), path)

	// The generated default document must itself be parseable.
	settings, err := LoadSettings(dir)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.True(t, settings.UseGitignore())
	assert.Contains(t, settings.IgnoreTreeAndContent, SettingsFileName)
	assert.Contains(t, settings.IgnoreContent, "README.md")
}

func TestCreateSettingsFileAlreadyExists(t *testing.T) {
	dir := t.TempDir()
	_, err := CreateSettingsFile(dir)
	require.NoError(t, err)

	_, err = CreateSettingsFile(dir)
	require.Error(t, err)

	var existsErr *SettingsExistsError
	assert.True(t, errors.As(err, &existsErr))
}

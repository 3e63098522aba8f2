package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings models the optional .repo-to-text-settings.yaml document. Pointer
// and slice fields distinguish absent keys from explicit empty values;
// unknown keys are ignored.
type Settings struct {
	GitignoreImport      *bool    `yaml:"gitignore-import-and-ignore"`
	IgnoreContent        []string `yaml:"ignore-content"`
	IgnoreTreeAndContent []string `yaml:"ignore-tree-and-content"`
}

// UseGitignore reports whether the VCS ignore file should be honored.
// Defaults to true when the key (or the whole document) is absent.
func (s *Settings) UseGitignore() bool {
	if s == nil || s.GitignoreImport == nil {
		return true
	}
	return *s.GitignoreImport
}

// LoadSettings reads the settings document at the root. A missing file is
// not an error and yields nil; a present but unparseable file yields a
// *ConfigError.
func LoadSettings(root string) (*Settings, error) {
	path := filepath.Join(root, SettingsFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(content, &settings); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return &settings, nil
}

// defaultSettingsContent is written by CreateSettingsFile.
const defaultSettingsContent = `# Details: https://github.com/kirill-markin/repo-to-text
# Syntax: gitignore rules

# Ignore files and directories for all sections from gitignore file
# Default: True
gitignore-import-and-ignore: True

# Ignore files and directories for tree
# and "Contents of ..." sections
ignore-tree-and-content:
  - ".repo-to-text-settings.yaml"

# Ignore files and directories for "Contents of ..." section
ignore-content:
  - "README.md"
  - "LICENSE"
  - "package-lock.json"
`

// CreateSettingsFile writes the default settings document into dir. It fails
// with *SettingsExistsError rather than overwrite an existing file.
func CreateSettingsFile(dir string) (string, error) {
	path := filepath.Join(dir, SettingsFileName)
	if _, err := os.Stat(path); err == nil {
		return "", &SettingsExistsError{Path: path}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to stat settings file %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(defaultSettingsContent), 0o644); err != nil {
		return "", fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	return path, nil
}

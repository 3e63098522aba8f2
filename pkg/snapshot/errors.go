package snapshot

import "fmt"

// ConfigError reports a settings document that exists but cannot be parsed.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("malformed settings file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// SettingsExistsError reports a create-settings request when the target file
// is already present. Nothing is overwritten.
type SettingsExistsError struct {
	Path string
}

func (e *SettingsExistsError) Error() string {
	return fmt.Sprintf("settings file %s already exists; remove or rename it to create a new default one", e.Path)
}

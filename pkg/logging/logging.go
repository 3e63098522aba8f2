// Package logging builds the application logger.
package logging

import (
	"go.uber.org/zap"
)

// Setup builds a logger: a development config with debug-level output when
// debug is set, a production config otherwise. The logger is returned to the
// caller and threaded explicitly through the components; no global logger is
// installed.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	return cfg.Build()
}

// Package logging builds the process-wide zap logger for the collo CLI.
package logging

import (
	"go.uber.org/zap"
)

// Setup builds and returns the application logger. With debug enabled it uses
// the zap development config for human-readable console output; otherwise the
// production config with JSON output.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}

// Package logging builds the zap logger shared by the unihdr commands.
package logging

import (
	"go.uber.org/zap"
)

// Setup builds a development logger when debug is set and a production
// logger otherwise, tags it with the application name and version and
// installs it as the zap global.
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

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}

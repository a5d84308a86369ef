package logging

import (
	"go.uber.org/zap"
)

// Logger is the process-wide logger. It is a no-op until Setup runs.
var Logger = zap.NewNop()

// Setup builds the process logger. Debug selects the development config at
// debug level; otherwise the production config only reports warnings and
// errors so the summary line stays the only regular output.
func Setup(debug bool, appName, appVersion string) error {
	var err error
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}

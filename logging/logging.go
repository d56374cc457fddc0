package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Enabled reports whether debug logging was requested via the
// RINGDIAL_DEBUG environment variable.
func Enabled() bool {
	return os.Getenv("RINGDIAL_DEBUG") != ""
}

// New builds the application logger. The TUI owns stdout, so debug
// output goes to a file; with debug off this is a no-op logger and
// nothing is ever written.
func New(debug bool, path string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	if path == "" {
		path = filepath.Join(os.TempDir(), "ringdial.log")
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

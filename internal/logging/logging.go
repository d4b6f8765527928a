// Package logging sets up the optional debug log file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New builds a file logger when debug is enabled and a nop logger
// otherwise. TUI programs own the terminal, so diagnostics never go to
// stdout or stderr.
func New(debug bool, path string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

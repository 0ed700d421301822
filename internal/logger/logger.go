package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/abhisek/thronesquiz/internal/config"
)

// Disabled is the log file value that turns logging off.
const Disabled = "-"

// New builds a file logger. The terminal is owned by the UI, so nothing is
// ever written to stdout or stderr.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Log.File == "" || cfg.Log.File == Disabled {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Log.Level, err)
	}
	zcfg.Level = level
	zcfg.OutputPaths = []string{cfg.Log.File}
	zcfg.ErrorOutputPaths = []string{cfg.Log.File}

	return zcfg.Build()
}

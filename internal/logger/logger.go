package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/iroquiz/internal/config"
)

// New builds the application logger. Without a log file it returns a no-op
// logger so nothing is written over the full-screen UI.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg == nil || cfg.Log.File == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	}
	zc.OutputPaths = []string{cfg.Log.File}
	zc.ErrorOutputPaths = []string{cfg.Log.File}

	if cfg.Log.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zc.Level = level
	}

	return zc.Build()
}

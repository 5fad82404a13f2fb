package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/bagdasarian/project-tracker/internal/config"
)

// New создает zap-логгер: JSON в production, консольный вывод в режиме разработки
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

package application

import (
	"github.com/neekrasov/smush/internal/config"
	"github.com/neekrasov/smush/pkg/logger"
)

func initLogger(cfg *config.LoggingConfig) error {
	if cfg == nil {
		return logger.InitLogger("", "")
	}
	return logger.InitLogger(cfg.Level, cfg.Output)
}

package application

import (
	"go.uber.org/zap"

	"github.com/neekrasov/smush/internal/config"
	"github.com/neekrasov/smush/pkg/logger"
	"github.com/neekrasov/smush/pkg/sizeutil"
)

func initLimits(cfg *config.LimitsConfig) (int, error) {
	if cfg == nil || cfg.MaxInputSize == "" {
		return 0, nil
	}

	size, err := sizeutil.ParseSize(cfg.MaxInputSize)
	if err != nil {
		logger.Error("parse max input size failed", zap.Error(err))
		return 0, err
	}

	logger.Debug("set max_input_size bytes", zap.Int("max_input_size", size))
	return size, nil
}

package application

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/neekrasov/smush/internal/config"
	"github.com/neekrasov/smush/pkg/logger"
	"github.com/neekrasov/smush/pkg/smush"
)

func initRegistry(cfg *config.CodecsConfig) *smush.Registry {
	if cfg == nil || len(cfg.Disabled) == 0 {
		return smush.NewRegistry()
	}

	for _, e := range cfg.Disabled {
		switch {
		case e.IsCustom():
			logger.Warn("ignore unknown encoding in codecs.disabled", zap.Stringer("encoding", e))
		case e == smush.Identity:
			logger.Warn("identity encoding cannot be disabled")
		default:
			logger.Debug("disable encoding", zap.Stringer("encoding", e))
		}
	}

	return smush.NewRegistry(smush.WithoutEncodings(cfg.Disabled...))
}

func initDefaults(registry *smush.Registry, cfg *config.CodecsConfig) (smush.Encoding, smush.Quality, error) {
	if cfg == nil {
		return smush.Identity, smush.Default, nil
	}

	encoding := cfg.DefaultEncoding
	if encoding == smush.ParseEncoding("") {
		encoding = smush.Identity
	}

	if !registry.IsEnabled(encoding) {
		return encoding, cfg.DefaultQuality, fmt.Errorf("default encoding %q is not enabled", encoding)
	}

	return encoding, cfg.DefaultQuality, nil
}

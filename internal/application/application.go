package application

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/neekrasov/smush/internal/config"
	"github.com/neekrasov/smush/internal/shell"
	"github.com/neekrasov/smush/pkg/logger"
	"github.com/neekrasov/smush/pkg/smush"
)

// ErrInputTooLarge - the payload exceeds limits.max_input_size.
var ErrInputTooLarge = errors.New("input too large")

// Application - configured codec stack shared by the CLI commands.
type Application struct {
	cfg *config.Config

	router          *smush.Router
	defaultEncoding smush.Encoding
	defaultQuality  smush.Quality
	maxInputSize    int
}

// New - initializes logger, registry and limits from cfg.
func New(cfg *config.Config) (*Application, error) {
	if err := initLogger(cfg.Logging); err != nil {
		return nil, fmt.Errorf("initialize logger failed: %w", err)
	}

	registry := initRegistry(cfg.Codecs)
	encoding, quality, err := initDefaults(registry, cfg.Codecs)
	if err != nil {
		return nil, fmt.Errorf("initialize codec defaults failed: %w", err)
	}

	maxInputSize, err := initLimits(cfg.Limits)
	if err != nil {
		return nil, fmt.Errorf("initialize limits failed: %w", err)
	}

	logger.Debug("application initialized",
		zap.Stringers("enabled", registry.Enabled()),
		zap.Stringer("default_encoding", encoding),
		zap.Stringer("default_quality", quality),
		zap.Int("max_input_size", maxInputSize),
	)

	return &Application{
		cfg:             cfg,
		router:          smush.NewRouter(registry),
		defaultEncoding: encoding,
		defaultQuality:  quality,
		maxInputSize:    maxInputSize,
	}, nil
}

// Router - dispatcher over the configured registry.
func (a *Application) Router() *smush.Router {
	return a.router
}

// DefaultEncoding - codecs.default_encoding.
func (a *Application) DefaultEncoding() smush.Encoding {
	return a.defaultEncoding
}

// DefaultQuality - codecs.default_quality.
func (a *Application) DefaultQuality() smush.Quality {
	return a.defaultQuality
}

// MaxInputSize - limits.max_input_size in bytes; zero means unlimited.
func (a *Application) MaxInputSize() int {
	return a.maxInputSize
}

// CheckInput - rejects payloads of n bytes that exceed the configured limit.
func (a *Application) CheckInput(n int) error {
	if a.maxInputSize > 0 && n > a.maxInputSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrInputTooLarge, n, a.maxInputSize)
	}
	return nil
}

// Shell - interactive shell over the configured router.
func (a *Application) Shell() *shell.Shell {
	return shell.New(a.router, shell.WithMaxInputSize(a.maxInputSize))
}

// Package smush - one Encode/Decode contract over many compression and
// encoding libraries, with codecs selectable at build time and by configuration.
package smush

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/neekrasov/smush/pkg/compression"
	"github.com/neekrasov/smush/pkg/logger"
)

// Router - dispatches calls to the adapter a registry holds for an encoding.
// Safe for concurrent use.
type Router struct {
	registry *Registry
}

// NewRouter - creates a router over registry. A nil registry means DefaultRegistry.
func NewRouter(registry *Registry) *Router {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Router{registry: registry}
}

// Registry - returns the registry the router dispatches to.
func (r *Router) Registry() *Registry {
	return r.registry
}

// IsEncodingEnabled - reports whether Encode and Decode can serve e.
func (r *Router) IsEncodingEnabled(e Encoding) bool {
	return r.registry.IsEnabled(e)
}

// Encode - encodes data with e at quality q. The result never aliases data.
func (r *Router) Encode(data []byte, e Encoding, q Quality) ([]byte, error) {
	return r.dispatch(data, e, compression.PhaseEncode, func(c compression.Compressor) ([]byte, error) {
		return c.Compress(data, q)
	})
}

// Decode - reverses Encode. Quality is recovered from the stream when a codec needs it.
func (r *Router) Decode(data []byte, e Encoding) ([]byte, error) {
	return r.dispatch(data, e, compression.PhaseDecode, func(c compression.Compressor) ([]byte, error) {
		return c.Decompress(data)
	})
}

func (r *Router) dispatch(
	data []byte,
	e Encoding,
	phase compression.Phase,
	call func(compression.Compressor) ([]byte, error),
) (out []byte, err error) {
	if e.Kind() == KindIdentity {
		return compression.IdentityCompressor{}.Compress(data, Default)
	}

	if e.IsCustom() {
		logger.Debug("custom encoding rejected", zap.String("encoding", e.String()))
		return nil, &compression.UnsupportedCustomEncodingError{Name: e.String()}
	}

	c, ok := r.registry.Compressor(e)
	if !ok {
		logger.Debug("codec disabled", zap.Stringer("encoding", e))
		return nil, &compression.CodecDisabledError{Name: e.String()}
	}

	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, &compression.CodecError{
				Codec: e.String(),
				Phase: phase,
				Err:   fmt.Errorf("codec panicked: %v", rec),
			}
		}
		if err != nil {
			logger.Debug("codec failed",
				zap.Stringer("encoding", e),
				zap.Stringer("phase", phase),
				zap.Error(err),
			)
		}
	}()

	out, err = call(c)
	if err != nil {
		var codecErr *compression.CodecError
		if !errors.As(err, &codecErr) {
			err = &compression.CodecError{Codec: e.String(), Phase: phase, Err: err}
		}
		return nil, err
	}
	if out == nil {
		out = []byte{}
	}

	logger.Debug("dispatched",
		zap.Stringer("encoding", e),
		zap.Stringer("phase", phase),
		zap.Int("in", len(data)),
		zap.Int("out", len(out)),
	)

	return out, nil
}

var (
	defaultRegistry = sync.OnceValue(func() *Registry { return NewRegistry() })
	defaultRouter   = sync.OnceValue(func() *Router { return NewRouter(defaultRegistry()) })
)

// DefaultRegistry - registry of every adapter linked into the build.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Encode - encodes data with the default registry.
func Encode(data []byte, e Encoding, q Quality) ([]byte, error) {
	return defaultRouter().Encode(data, e, q)
}

// Decode - decodes data with the default registry.
func Decode(data []byte, e Encoding) ([]byte, error) {
	return defaultRouter().Decode(data, e)
}

// IsEncodingEnabled - reports whether the default registry serves e.
func IsEncodingEnabled(e Encoding) bool {
	return defaultRouter().IsEncodingEnabled(e)
}

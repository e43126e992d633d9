package smush

import (
	"github.com/neekrasov/smush/pkg/compression"
)

// linked - adapters compiled into the binary, filled by the codec_*.go init functions.
var linked = map[Kind]compression.Compressor{}

func link(kind Kind, c compression.Compressor) {
	linked[kind] = c
}

// LinkedEncodings - returns the encodings whose adapters were compiled in,
// in declaration order. Identity is always present.
func LinkedEncodings() []Encoding {
	encodings := []Encoding{Identity}
	for k := KindIdentity + 1; k < kindCount; k++ {
		if _, ok := linked[k]; ok {
			encodings = append(encodings, Encoding{kind: k})
		}
	}
	return encodings
}

type registryOptions struct {
	only        map[Kind]struct{}
	without     map[Kind]struct{}
	compressors map[Kind]compression.Compressor
}

// RegistryOption - configures NewRegistry.
type RegistryOption func(*registryOptions)

// WithEncodings - restricts the registry to the given encodings.
// May be passed more than once; the sets are merged.
func WithEncodings(encodings ...Encoding) RegistryOption {
	return func(o *registryOptions) {
		if o.only == nil {
			o.only = make(map[Kind]struct{}, len(encodings))
		}
		for _, e := range encodings {
			o.only[e.Kind()] = struct{}{}
		}
	}
}

// WithoutEncodings - disables the given encodings. Identity cannot be disabled.
func WithoutEncodings(encodings ...Encoding) RegistryOption {
	return func(o *registryOptions) {
		for _, e := range encodings {
			o.without[e.Kind()] = struct{}{}
		}
	}
}

// WithCompressor - installs c for a built-in kind, replacing the linked adapter
// or providing one the build left out. Identity and custom kinds are ignored.
func WithCompressor(kind Kind, c compression.Compressor) RegistryOption {
	return func(o *registryOptions) {
		if kind == KindCustom || kind == KindIdentity || kind >= kindCount || c == nil {
			return
		}
		o.compressors[kind] = c
	}
}

// Registry - immutable set of enabled adapters. Safe for concurrent use.
type Registry struct {
	compressors map[Kind]compression.Compressor
}

// NewRegistry - snapshots the linked adapters and applies opts.
func NewRegistry(opts ...RegistryOption) *Registry {
	options := registryOptions{
		without:     make(map[Kind]struct{}),
		compressors: make(map[Kind]compression.Compressor),
	}
	for _, opt := range opts {
		opt(&options)
	}

	compressors := make(map[Kind]compression.Compressor, len(linked)+1)
	for kind, c := range linked {
		compressors[kind] = c
	}
	for kind, c := range options.compressors {
		compressors[kind] = c
	}

	for kind := range compressors {
		if _, ok := options.without[kind]; ok {
			delete(compressors, kind)
			continue
		}
		if options.only == nil {
			continue
		}
		if _, ok := options.only[kind]; !ok {
			delete(compressors, kind)
		}
	}
	compressors[KindIdentity] = compression.IdentityCompressor{}

	return &Registry{compressors: compressors}
}

// IsEnabled - true for Identity, false for extension tags, otherwise
// whether an adapter for e is present.
func (r *Registry) IsEnabled(e Encoding) bool {
	_, ok := r.Compressor(e)
	return ok
}

// Compressor - returns the adapter serving e.
func (r *Registry) Compressor(e Encoding) (compression.Compressor, bool) {
	if e.IsCustom() {
		return nil, false
	}

	c, ok := r.compressors[e.Kind()]
	return c, ok
}

// Enabled - returns the enabled encodings in declaration order.
func (r *Registry) Enabled() []Encoding {
	encodings := make([]Encoding, 0, len(r.compressors))
	for k := KindIdentity; k < kindCount; k++ {
		if _, ok := r.compressors[k]; ok {
			encodings = append(encodings, Encoding{kind: k})
		}
	}
	return encodings
}

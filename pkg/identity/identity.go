// Package identity - content-derived identifiers: a digest of the data and its base-58 text form.
package identity

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnknownAlgorithm - the digest name is not one of Algorithms.
var ErrUnknownAlgorithm = errors.New("unknown identity algorithm")

// Algorithm - digest used to derive an identity.
type Algorithm string

const (
	SHA256     Algorithm = "sha256"
	BLAKE2b256 Algorithm = "blake2b-256"
	SHA3_256   Algorithm = "sha3-256"
)

// Algorithms - returns the supported digests, the default first.
func Algorithms() []Algorithm {
	return []Algorithm{SHA256, BLAKE2b256, SHA3_256}
}

// ParseAlgorithm - converts a name into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case SHA256:
		return sha256.New(), nil
	case BLAKE2b256:
		return blake2b.New256(nil)
	case SHA3_256:
		return sha3.New256(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, string(a))
	}
}

// Identity - raw digest and its base-58 rendering.
type Identity struct {
	Raw  []byte
	Text string
}

type options struct {
	algorithm Algorithm
}

// Option - configures identity computation.
type Option func(*options)

// WithAlgorithm - selects the digest. Unknown values make the computation fail.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		o.algorithm = a
	}
}

func newHash(opts []Option) (hash.Hash, error) {
	o := options{algorithm: SHA256}
	for _, opt := range opts {
		opt(&o)
	}
	return o.algorithm.newHash()
}

func fromHash(h hash.Hash) Identity {
	raw := h.Sum(nil)
	return Identity{Raw: raw, Text: base58.Encode(raw)}
}

// ComputeDataIdentity - digests data.
func ComputeDataIdentity(data []byte, opts ...Option) (Identity, error) {
	h, err := newHash(opts)
	if err != nil {
		return Identity{}, err
	}

	_, _ = h.Write(data)
	return fromHash(h), nil
}

// ComputeIdentity - returns the base-58 SHA-256 identity of data.
func ComputeIdentity(data []byte) string {
	h := sha256.Sum256(data)
	return base58.Encode(h[:])
}

// ComputeReaderIdentity - digests everything r yields.
func ComputeReaderIdentity(r io.Reader, opts ...Option) (Identity, error) {
	h, err := newHash(opts)
	if err != nil {
		return Identity{}, err
	}

	if _, err := io.Copy(h, r); err != nil {
		return Identity{}, fmt.Errorf("failed to read identity source: %w", err)
	}
	return fromHash(h), nil
}

// ComputeFileIdentity - digests the file at path.
func ComputeFileIdentity(path string, opts ...Option) (Identity, error) {
	file, err := os.Open(path)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return ComputeReaderIdentity(file, opts...)
}

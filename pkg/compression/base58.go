package compression

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/mr-tron/base58"
)

// ErrInvalidUTF8 - base58 input must be text.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Base58Compressor - renders bytes as base-58 text (Bitcoin alphabet).
// The output grows by roughly 37%; quality is ignored.
type Base58Compressor struct{}

func (b *Base58Compressor) Name() string { return Base58Name }

func (b *Base58Compressor) Compress(data []byte, _ Quality) ([]byte, error) {
	return []byte(base58.Encode(data)), nil
}

// Decompress - parses data as UTF-8 text, trims surrounding whitespace and decodes it.
func (b *Base58Compressor) Decompress(data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, decodeError(Base58Name, ErrInvalidUTF8)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return []byte{}, nil
	}

	out, err := base58.Decode(text)
	if err != nil {
		return nil, decodeError(Base58Name, err)
	}

	return out, nil
}

package smush

import (
	"github.com/neekrasov/smush/pkg/compression"
)

// Kind - closed set of built-in encodings, plus KindCustom for extension tags.
type Kind uint8

const (
	KindCustom Kind = iota
	KindIdentity
	KindGzip
	KindDeflate
	KindZlib
	KindZstd
	KindBrotli
	KindLz4
	KindLzma
	KindLzma2
	KindXz
	KindBzip2
	KindBinCode
	KindBase58

	kindCount
)

var kindTokens = [kindCount]string{
	KindIdentity: compression.IdentityName,
	KindGzip:     compression.GzipName,
	KindDeflate:  compression.DeflateName,
	KindZlib:     compression.ZlibName,
	KindZstd:     compression.ZstdName,
	KindBrotli:   compression.BrotliName,
	KindLz4:      compression.LZ4Name,
	KindLzma:     compression.LZMAName,
	KindLzma2:    compression.LZMA2Name,
	KindXz:       compression.XZName,
	KindBzip2:    compression.Bzip2Name,
	KindBinCode:  compression.BinCodeName,
	KindBase58:   compression.Base58Name,
}

// String - returns the canonical token of a built-in kind, "custom" for KindCustom.
func (k Kind) String() string {
	if k == KindCustom || k >= kindCount {
		return "custom"
	}
	return kindTokens[k]
}

// Encoding - names a codec. Built-ins compare equal by kind; extension tags
// carry their name verbatim. The zero value is an extension tag with an empty name.
type Encoding struct {
	kind Kind
	name string
}

var (
	Identity = Encoding{kind: KindIdentity}
	Gzip     = Encoding{kind: KindGzip}
	Deflate  = Encoding{kind: KindDeflate}
	Zlib     = Encoding{kind: KindZlib}
	Zstd     = Encoding{kind: KindZstd}
	Brotli   = Encoding{kind: KindBrotli}
	Lz4      = Encoding{kind: KindLz4}
	Lzma     = Encoding{kind: KindLzma}
	Lzma2    = Encoding{kind: KindLzma2}
	Xz       = Encoding{kind: KindXz}
	Bzip2    = Encoding{kind: KindBzip2}
	BinCode  = Encoding{kind: KindBinCode}
	Base58   = Encoding{kind: KindBase58}
)

// Encodings - returns every built-in encoding in declaration order.
func Encodings() []Encoding {
	encodings := make([]Encoding, 0, kindCount-1)
	for k := KindIdentity; k < kindCount; k++ {
		encodings = append(encodings, Encoding{kind: k})
	}
	return encodings
}

// ParseEncoding - converts a token into an Encoding. Canonical lowercase tokens
// map to built-ins; anything else becomes an extension tag holding the token.
// Parsing never fails: unknown tags are rejected only when dispatched.
func ParseEncoding(s string) Encoding {
	for k := KindIdentity; k < kindCount; k++ {
		if kindTokens[k] == s {
			return Encoding{kind: k}
		}
	}

	return Encoding{kind: KindCustom, name: s}
}

// Kind - returns the built-in kind, or KindCustom for extension tags.
func (e Encoding) Kind() Kind {
	if e.kind >= kindCount {
		return KindCustom
	}
	return e.kind
}

// IsCustom - reports whether e is an extension tag.
func (e Encoding) IsCustom() bool {
	return e.Kind() == KindCustom
}

// String - returns the canonical token, or the stored name of an extension tag.
func (e Encoding) String() string {
	if e.IsCustom() {
		return e.name
	}
	return kindTokens[e.kind]
}

// MarshalText - implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText - implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(text []byte) error {
	*e = ParseEncoding(string(text))
	return nil
}

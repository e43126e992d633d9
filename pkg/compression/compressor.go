// Package compression - adapters presenting third-party compression and encoding
// libraries behind one Compressor contract.
package compression

import (
	"bytes"
	"io"
)

// Compressor - interface for data compression and decompression.
type Compressor interface {
	// Name - canonical codec token, used in errors.
	Name() string
	// Compress - compresses input data using the quality-derived native level.
	Compress(data []byte, quality Quality) ([]byte, error)
	// Decompress - restores data produced by Compress, failing on corrupt or truncated input.
	Decompress(data []byte) ([]byte, error)
}

// Codec names.
const (
	IdentityName = "identity"
	GzipName     = "gzip"
	DeflateName  = "deflate"
	ZlibName     = "zlib"
	ZstdName     = "zstd"
	BrotliName   = "brotli"
	LZ4Name      = "lz4"
	LZMAName     = "lzma"
	LZMA2Name    = "lzma2"
	XZName       = "xz"
	Bzip2Name    = "bzip2"
	BinCodeName  = "bincode"
	Base58Name   = "base58"
)

// writeAll - pushes data through a compressing writer created over buf and closes it.
func writeAll(buf *bytes.Buffer, w io.WriteCloser, data []byte) ([]byte, error) {
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// readAll - drains a decompressing reader. The result is never nil.
func readAll(r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []byte{}
	}

	return out, nil
}

// strictSource - stream source for decoders that stop reading at their own end
// marker. Any EOF such a decoder sees means the stream was cut short, so it is
// reported as io.ErrUnexpectedEOF.
type strictSource struct {
	r *bytes.Reader
}

func newStrictSource(data []byte) strictSource {
	return strictSource{r: bytes.NewReader(data)}
}

func (s strictSource) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return n, err
}

// Remaining - bytes the decoder left unread.
func (s strictSource) Remaining() int {
	return s.r.Len()
}

func (s strictSource) ReadByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return b, err
}

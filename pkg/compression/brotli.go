package compression

import (
	"bytes"
	"errors"
	"io"

	"github.com/andybalholm/brotli"
)

const brotliWindowBits = 20

func brotliQuality(q Quality) int {
	return levelTable(q, 6, brotli.BestCompression)
}

// BrotliCompressor - Brotli (RFC 7932) with a 1 MiB window.
type BrotliCompressor struct{}

func (b *BrotliCompressor) Name() string { return BrotliName }

func (b *BrotliCompressor) Compress(data []byte, quality Quality) ([]byte, error) {
	var buf bytes.Buffer
	writer := brotli.NewWriterOptions(&buf, brotli.WriterOptions{
		Quality: brotliQuality(quality),
		LGWin:   brotliWindowBits,
	})

	out, err := writeAll(&buf, writer, data)
	if err != nil {
		return nil, encodeError(BrotliName, err)
	}

	return out, nil
}

// Decompress - the reader reports a source EOF between meta-blocks as a clean
// end, so the stream is followed by one marker byte. A complete stream leaves
// the marker unread and the reader rejects it as excess input. A truncated one
// consumes it and then runs out of input.
func (b *BrotliCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, decodeError(BrotliName, io.ErrUnexpectedEOF)
	}

	src := &brotliSource{r: bytes.NewReader(data)}
	out, err := io.ReadAll(brotli.NewReader(src))

	switch {
	case errors.Is(err, brotliExcessInput) && src.marked:
		if out == nil {
			out = []byte{}
		}
		return out, nil
	case errors.Is(err, brotliExcessInput):
		return nil, decodeError(BrotliName, ErrTrailingBytes)
	case err == nil:
		return nil, decodeError(BrotliName, io.ErrUnexpectedEOF)
	default:
		return nil, decodeError(BrotliName, err)
	}
}

// brotliExcessInput - the reader's error for bytes after a complete stream.
// The library does not export it, so it is taken from an empty stream.
var brotliExcessInput = func() error {
	stream, err := new(BrotliCompressor).Compress(nil, Default)
	if err != nil {
		panic(err)
	}

	_, err = io.ReadAll(brotli.NewReader(bytes.NewReader(append(stream, 0))))
	return err
}()

// brotliSource - yields the stream, then a single marker byte in a read of its
// own, then io.ErrUnexpectedEOF.
type brotliSource struct {
	r      *bytes.Reader
	marked bool
}

func (s *brotliSource) Read(p []byte) (int, error) {
	if s.r.Len() > 0 {
		return s.r.Read(p)
	}
	if s.marked || len(p) == 0 {
		return 0, io.ErrUnexpectedEOF
	}

	s.marked = true
	p[0] = 0
	return 1, nil
}

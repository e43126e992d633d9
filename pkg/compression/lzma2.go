package compression

import (
	"bytes"
	"fmt"

	"github.com/ulikunitz/xz/lzma"
)

// LZMA2Compressor - raw LZMA2 chunk stream. The stream carries no dictionary
// size, so the reader always uses the largest dictionary the writer may pick.
// The reader stops at the end-of-stream chunk, so a drained source means truncation.
type LZMA2Compressor struct{}

func (l *LZMA2Compressor) Name() string { return LZMA2Name }

func (l *LZMA2Compressor) Compress(data []byte, quality Quality) ([]byte, error) {
	var buf bytes.Buffer

	config := lzma.Writer2Config{
		DictCap: lzmaDictCap(quality),
	}

	writer, err := config.NewWriter2(&buf)
	if err != nil {
		return nil, encodeError(LZMA2Name, err)
	}

	out, err := writeAll(&buf, writer, data)
	if err != nil {
		return nil, encodeError(LZMA2Name, err)
	}

	return out, nil
}

func (l *LZMA2Compressor) Decompress(data []byte) ([]byte, error) {
	config := lzma.Reader2Config{
		DictCap: lzmaMaxDictCap,
	}

	src := newStrictSource(data)
	reader, err := config.NewReader2(src)
	if err != nil {
		return nil, decodeError(LZMA2Name, err)
	}

	out, err := readAll(reader)
	if err != nil {
		return nil, decodeError(LZMA2Name, err)
	}
	if n := src.Remaining(); n > 0 {
		return nil, decodeError(LZMA2Name, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, n))
	}

	return out, nil
}

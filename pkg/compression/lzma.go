package compression

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ulikunitz/xz/lzma"
)

const (
	lzmaDefaultDictCap = 8 << 20
	lzmaMaxDictCap     = 16 << 20

	// lzmaDictCapLimit - largest dictionary accepted from a stream header.
	// The reader allocates the whole dictionary up front.
	lzmaDictCapLimit = 64 << 20
)

// lzmaDictCaps - dictionary sizes of the xz presets 1..9, capped to lzmaMaxDictCap.
var lzmaDictCaps = [...]int{
	256 << 10, 1 << 20, 2 << 20,
	4 << 20, 4 << 20, 8 << 20,
	8 << 20, 16 << 20, lzmaMaxDictCap,
}

// lzmaDictCap - shared by the lzma, lzma2 and xz adapters.
func lzmaDictCap(q Quality) int {
	switch l := q.Level(); {
	case l == 0:
		return lzmaDefaultDictCap
	case l > len(lzmaDictCaps):
		return lzmaMaxDictCap
	default:
		return lzmaDictCaps[l-1]
	}
}

// LZMACompressor - classic .lzma format with the uncompressed size in the header.
// Empty input has no range coder payload to carry a known size, so it is
// written with an unknown size and an end marker instead.
type LZMACompressor struct{}

func (l *LZMACompressor) Name() string { return LZMAName }

func (l *LZMACompressor) Compress(data []byte, quality Quality) ([]byte, error) {
	var buf bytes.Buffer

	config := lzma.WriterConfig{
		DictCap:      lzmaDictCap(quality),
		SizeInHeader: len(data) > 0,
		Size:         int64(len(data)),
		EOSMarker:    len(data) == 0,
	}

	writer, err := config.NewWriter(&buf)
	if err != nil {
		return nil, encodeError(LZMAName, err)
	}

	out, err := writeAll(&buf, writer, data)
	if err != nil {
		return nil, encodeError(LZMAName, err)
	}

	return out, nil
}

func (l *LZMACompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) >= lzma.HeaderLen {
		if dictCap := binary.LittleEndian.Uint32(data[1:5]); dictCap > lzmaDictCapLimit {
			return nil, decodeError(LZMAName,
				fmt.Errorf("dictionary capacity %d exceeds limit %d", dictCap, lzmaDictCapLimit))
		}
	}

	src := newStrictSource(data)
	reader, err := lzma.NewReader(src)
	if err != nil {
		return nil, decodeError(LZMAName, err)
	}

	out, err := readAll(reader)
	if err != nil {
		return nil, decodeError(LZMAName, err)
	}
	if n := src.Remaining(); n > 0 {
		return nil, decodeError(LZMAName, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, n))
	}

	return out, nil
}

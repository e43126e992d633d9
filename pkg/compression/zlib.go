package compression

import (
	"bytes"

	"github.com/klauspost/compress/zlib"
)

// ZlibCompressor - DEFLATE inside the zlib (RFC 1950) container with an Adler-32 trailer.
type ZlibCompressor struct{}

func (z *ZlibCompressor) Name() string { return ZlibName }

func (z *ZlibCompressor) Compress(data []byte, quality Quality) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buf, flateLevel(quality))
	if err != nil {
		return nil, encodeError(ZlibName, err)
	}

	out, err := writeAll(&buf, writer, data)
	if err != nil {
		return nil, encodeError(ZlibName, err)
	}

	return out, nil
}

func (z *ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(ZlibName, err)
	}
	defer reader.Close()

	out, err := readAll(reader)
	if err != nil {
		return nil, decodeError(ZlibName, err)
	}

	return out, nil
}

package compression

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
)

// GzipCompressor - provides methods for compressing and decompressing data using the Gzip algorithm.
type GzipCompressor struct{}

func (g *GzipCompressor) Name() string { return GzipName }

// Compress - compresses input data ([]byte) using Gzip.
func (g *GzipCompressor) Compress(data []byte, quality Quality) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := gzip.NewWriterLevel(&buf, flateLevel(quality))
	if err != nil {
		return nil, encodeError(GzipName, err)
	}

	out, err := writeAll(&buf, writer, data)
	if err != nil {
		return nil, encodeError(GzipName, err)
	}

	return out, nil
}

// Decompress - decompresses compressed data ([]byte) compressed using Gzip.
func (g *GzipCompressor) Decompress(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(GzipName, err)
	}
	defer reader.Close()

	out, err := readAll(reader)
	if err != nil {
		return nil, decodeError(GzipName, err)
	}

	return out, nil
}

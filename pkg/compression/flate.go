package compression

import (
	"bytes"

	"github.com/klauspost/compress/flate"
)

// flateLevel - shared by the deflate, gzip and zlib adapters, which all run DEFLATE.
func flateLevel(q Quality) int {
	return levelTable(q, 6, flate.BestCompression)
}

// DeflateCompressor - raw DEFLATE (RFC 1951) without a container.
type DeflateCompressor struct{}

func (f *DeflateCompressor) Name() string { return DeflateName }

func (f *DeflateCompressor) Compress(data []byte, quality Quality) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := flate.NewWriter(&buf, flateLevel(quality))
	if err != nil {
		return nil, encodeError(DeflateName, err)
	}

	out, err := writeAll(&buf, writer, data)
	if err != nil {
		return nil, encodeError(DeflateName, err)
	}

	return out, nil
}

func (f *DeflateCompressor) Decompress(data []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(data))
	defer reader.Close()

	out, err := readAll(reader)
	if err != nil {
		return nil, decodeError(DeflateName, err)
	}

	return out, nil
}

package compression

import (
	"bytes"

	"github.com/dsnet/compress/bzip2"
)

func bzip2Level(q Quality) int {
	return levelTable(q, bzip2.DefaultCompression, bzip2.BestCompression)
}

// Bzip2Compressor - bzip2 block-sorting compression.
type Bzip2Compressor struct{}

func (b *Bzip2Compressor) Name() string { return Bzip2Name }

func (b *Bzip2Compressor) Compress(data []byte, quality Quality) ([]byte, error) {
	var buf bytes.Buffer

	config := bzip2.WriterConfig{
		Level: bzip2Level(quality),
	}

	writer, err := bzip2.NewWriter(&buf, &config)
	if err != nil {
		return nil, encodeError(Bzip2Name, err)
	}

	out, err := writeAll(&buf, writer, data)
	if err != nil {
		return nil, encodeError(Bzip2Name, err)
	}

	return out, nil
}

func (b *Bzip2Compressor) Decompress(data []byte) ([]byte, error) {
	reader, err := bzip2.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, decodeError(Bzip2Name, err)
	}
	defer reader.Close()

	out, err := readAll(reader)
	if err != nil {
		return nil, decodeError(Bzip2Name, err)
	}

	return out, nil
}

package compression

import (
	"bytes"

	"github.com/pierrec/lz4/v4"
)

var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Level1, lz4.Level2, lz4.Level3,
	lz4.Level4, lz4.Level5, lz4.Level6,
	lz4.Level7, lz4.Level8, lz4.Level9,
}

func lz4Level(q Quality) lz4.CompressionLevel {
	return lz4Levels[levelTable(q, 4, len(lz4Levels))-1]
}

// LZ4Compressor - LZ4 frame format with content checksum.
type LZ4Compressor struct{}

func (l *LZ4Compressor) Name() string { return LZ4Name }

func (l *LZ4Compressor) Compress(data []byte, quality Quality) ([]byte, error) {
	var buf bytes.Buffer
	writer := lz4.NewWriter(&buf)
	if err := writer.Apply(
		lz4.CompressionLevelOption(lz4Level(quality)),
		lz4.ChecksumOption(true),
	); err != nil {
		return nil, encodeError(LZ4Name, err)
	}

	out, err := writeAll(&buf, writer, data)
	if err != nil {
		return nil, encodeError(LZ4Name, err)
	}

	return out, nil
}

// Decompress - a complete frame ends with its end mark and checksum, read with
// exact-length reads, so the source is never drained before the frame ends.
func (l *LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	out, err := readAll(lz4.NewReader(newStrictSource(data)))
	if err != nil {
		return nil, decodeError(LZ4Name, err)
	}

	return out, nil
}

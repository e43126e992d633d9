package compression

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

const (
	zstdDefaultLevel = 3
	zstdMaxLevel     = 19
)

func zstdLevel(q Quality) zstd.EncoderLevel {
	return zstd.EncoderLevelFromZstd(levelTable(q, zstdDefaultLevel, zstdMaxLevel))
}

// ZstdCompressor - Zstandard frames. Encoder and decoder contexts are created per call.
type ZstdCompressor struct{}

func (z *ZstdCompressor) Name() string { return ZstdName }

func (z *ZstdCompressor) Compress(data []byte, quality Quality) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstdLevel(quality)),
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, encodeError(ZstdName, err)
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, make([]byte, 0, len(data)/2+64)), nil
}

// Decompress - Compress always emits a frame, so empty input is a truncated stream.
func (z *ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, decodeError(ZstdName, io.ErrUnexpectedEOF)
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, decodeError(ZstdName, err)
	}
	defer decoder.Close()

	out, err := decoder.DecodeAll(data, []byte{})
	if err != nil {
		return nil, decodeError(ZstdName, err)
	}

	return out, nil
}

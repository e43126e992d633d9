package compression

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// BinCodeCompressor - length-prefixed binary framing (varint length followed by the raw bytes).
// It performs no size reduction; it exists so framed bytes share the encoding taxonomy.
type BinCodeCompressor struct{}

func (b *BinCodeCompressor) Name() string { return BinCodeName }

func (b *BinCodeCompressor) Compress(data []byte, _ Quality) ([]byte, error) {
	out := make([]byte, 0, protowire.SizeBytes(len(data)))
	return protowire.AppendBytes(out, data), nil
}

func (b *BinCodeCompressor) Decompress(data []byte) ([]byte, error) {
	payload, n := protowire.ConsumeBytes(data)
	if n < 0 {
		return nil, decodeError(BinCodeName, protowire.ParseError(n))
	}
	if n != len(data) {
		return nil, decodeError(BinCodeName,
			fmt.Errorf("%w: %d of %d bytes consumed", ErrTrailingBytes, n, len(data)))
	}

	return clone(payload), nil
}

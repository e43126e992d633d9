package compression

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/ulikunitz/xz"
)

// XZCompressor - single xz stream with an LZMA2 filter and CRC64 check.
type XZCompressor struct{}

func (x *XZCompressor) Name() string { return XZName }

func (x *XZCompressor) Compress(data []byte, quality Quality) ([]byte, error) {
	var buf bytes.Buffer

	config := xz.WriterConfig{
		DictCap:  lzmaDictCap(quality),
		CheckSum: xz.CRC64,
	}

	writer, err := config.NewWriter(&buf)
	if err != nil {
		return nil, encodeError(XZName, err)
	}

	out, err := writeAll(&buf, writer, data)
	if err != nil {
		return nil, encodeError(XZName, err)
	}

	return out, nil
}

func (x *XZCompressor) Decompress(data []byte) ([]byte, error) {
	config := xz.ReaderConfig{
		SingleStream: true,
	}

	reader, err := config.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(XZName, err)
	}

	out, err := readAll(reader)
	if err != nil {
		return nil, decodeError(XZName, err)
	}

	// The reader ends quietly when the input stops at a block boundary.
	if !hasXZFooter(data) {
		return nil, decodeError(XZName, io.ErrUnexpectedEOF)
	}

	return out, nil
}

// xzFooterLen - CRC32, backward size, stream flags and the "YZ" magic.
const xzFooterLen = 12

// hasXZFooter - reports whether data ends with a stream footer matching its header.
func hasXZFooter(data []byte) bool {
	if len(data) < xz.HeaderLen+xzFooterLen {
		return false
	}

	footer := data[len(data)-xzFooterLen:]
	if footer[10] != 'Y' || footer[11] != 'Z' {
		return false
	}
	if !bytes.Equal(footer[8:10], data[6:8]) {
		return false
	}

	return binary.LittleEndian.Uint32(footer[:4]) == crc32.ChecksumIEEE(footer[4:10])
}

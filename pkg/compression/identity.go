package compression

import "bytes"

// IdentityCompressor - passes data through unchanged.
type IdentityCompressor struct{}

func (IdentityCompressor) Name() string { return IdentityName }

// Compress - returns a copy of data.
func (IdentityCompressor) Compress(data []byte, _ Quality) ([]byte, error) {
	return clone(data), nil
}

// Decompress - returns a copy of data.
func (IdentityCompressor) Decompress(data []byte) ([]byte, error) {
	return clone(data), nil
}

func clone(data []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}
	return bytes.Clone(data)
}

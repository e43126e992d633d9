package compression

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "codec failure",
			err:      decodeError(GzipName, io.ErrUnexpectedEOF),
			sentinel: ErrCodecFailure,
			message:  "failed to decode with gzip: unexpected EOF",
		},
		{
			name:     "codec disabled",
			err:      &CodecDisabledError{Name: BrotliName},
			sentinel: ErrCodecDisabled,
			message:  "`brotli` codec is disabled",
		},
		{
			name:     "custom encoding",
			err:      &UnsupportedCustomEncodingError{Name: "snappy"},
			sentinel: ErrUnsupportedCustomEncoding,
			message:  "`snappy` custom encoding is unsupported",
		},
		{
			name:     "invalid quality",
			err:      &InvalidQualityError{Token: "loud"},
			sentinel: ErrInvalidQuality,
			message:  `invalid quality "loud"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.EqualError(t, tt.err, tt.message)

			for _, other := range []error{ErrCodecFailure, ErrCodecDisabled, ErrUnsupportedCustomEncoding, ErrInvalidQuality} {
				if other != tt.sentinel {
					assert.False(t, errors.Is(tt.err, other))
				}
			}
		})
	}

	assert.ErrorIs(t, encodeError(ZstdName, io.ErrShortWrite), io.ErrShortWrite)
	assert.Equal(t, "encode", PhaseEncode.String())
	assert.Equal(t, "unknown", Phase(0).String())
}

package smush

import "github.com/neekrasov/smush/pkg/compression"

type (
	Quality    = compression.Quality
	Compressor = compression.Compressor

	CodecError                     = compression.CodecError
	CodecDisabledError             = compression.CodecDisabledError
	UnsupportedCustomEncodingError = compression.UnsupportedCustomEncodingError
	InvalidQualityError            = compression.InvalidQualityError
)

const (
	Default = compression.Default
	Level1  = compression.Level1
	Level2  = compression.Level2
	Level3  = compression.Level3
	Level4  = compression.Level4
	Level5  = compression.Level5
	Level6  = compression.Level6
	Level7  = compression.Level7
	Level8  = compression.Level8
	Level9  = compression.Level9
	Maximum = compression.Maximum
)

var (
	ErrCodecDisabled             = compression.ErrCodecDisabled
	ErrUnsupportedCustomEncoding = compression.ErrUnsupportedCustomEncoding
	ErrCodecFailure              = compression.ErrCodecFailure
	ErrInvalidQuality            = compression.ErrInvalidQuality
)

// ParseQuality - see compression.ParseQuality.
func ParseQuality(s string) (Quality, error) {
	return compression.ParseQuality(s)
}

// Qualities - see compression.Qualities.
func Qualities() []Quality {
	return compression.Qualities()
}

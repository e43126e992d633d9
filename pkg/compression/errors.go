package compression

import (
	"errors"
	"fmt"
)

var (
	// ErrCodecDisabled - the codec is not available in this build or configuration.
	ErrCodecDisabled = errors.New("codec disabled")

	// ErrUnsupportedCustomEncoding - the encoding is an extension tag with no implementation.
	ErrUnsupportedCustomEncoding = errors.New("unsupported custom encoding")

	// ErrCodecFailure - the underlying library failed to compress or decompress.
	ErrCodecFailure = errors.New("codec failure")

	// ErrTrailingBytes - input continues after a complete payload.
	ErrTrailingBytes = errors.New("trailing bytes after payload")

	// ErrInvalidQuality - the quality token is not recognized.
	ErrInvalidQuality = errors.New("invalid quality")
)

// Phase - direction of a codec call.
type Phase uint8

const (
	PhaseEncode Phase = iota + 1
	PhaseDecode
)

// String - returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseEncode:
		return "encode"
	case PhaseDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// CodecError - failure reported by a codec library, normalized by its adapter.
type CodecError struct {
	Codec string
	Phase Phase
	Err   error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("failed to %s with %s: %v", e.Phase, e.Codec, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

func (e *CodecError) Is(target error) bool { return target == ErrCodecFailure }

// CodecDisabledError - the named codec was not compiled in or was disabled by configuration.
type CodecDisabledError struct {
	Name string
}

func (e *CodecDisabledError) Error() string {
	return fmt.Sprintf("`%s` codec is disabled", e.Name)
}

func (e *CodecDisabledError) Is(target error) bool { return target == ErrCodecDisabled }

// UnsupportedCustomEncodingError - the encoding is an extension tag and has no codec.
type UnsupportedCustomEncodingError struct {
	Name string
}

func (e *UnsupportedCustomEncodingError) Error() string {
	return fmt.Sprintf("`%s` custom encoding is unsupported", e.Name)
}

func (e *UnsupportedCustomEncodingError) Is(target error) bool {
	return target == ErrUnsupportedCustomEncoding
}

// InvalidQualityError - the quality token is not one of the canonical tokens.
type InvalidQualityError struct {
	Token string
}

func (e *InvalidQualityError) Error() string {
	return fmt.Sprintf("invalid quality %q", e.Token)
}

func (e *InvalidQualityError) Is(target error) bool { return target == ErrInvalidQuality }

func encodeError(codec string, err error) error {
	return &CodecError{Codec: codec, Phase: PhaseEncode, Err: err}
}

func decodeError(codec string, err error) error {
	return &CodecError{Codec: codec, Phase: PhaseDecode, Err: err}
}

//go:build !smush_nolzma2

package smush

import "github.com/neekrasov/smush/pkg/compression"

func init() {
	link(KindLzma2, &compression.LZMA2Compressor{})
}

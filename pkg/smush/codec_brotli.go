//go:build !smush_nobrotli

package smush

import "github.com/neekrasov/smush/pkg/compression"

func init() {
	link(KindBrotli, &compression.BrotliCompressor{})
}

//go:build !smush_nolz4

package smush

import "github.com/neekrasov/smush/pkg/compression"

func init() {
	link(KindLz4, &compression.LZ4Compressor{})
}

//go:build !smush_nolzma

package smush

import "github.com/neekrasov/smush/pkg/compression"

func init() {
	link(KindLzma, &compression.LZMACompressor{})
}

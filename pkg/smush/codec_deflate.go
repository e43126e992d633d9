//go:build !smush_nodeflate

package smush

import "github.com/neekrasov/smush/pkg/compression"

func init() {
	link(KindDeflate, &compression.DeflateCompressor{})
}

//go:build !smush_nozlib

package smush

import "github.com/neekrasov/smush/pkg/compression"

func init() {
	link(KindZlib, &compression.ZlibCompressor{})
}

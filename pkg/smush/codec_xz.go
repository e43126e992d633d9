//go:build !smush_noxz

package smush

import "github.com/neekrasov/smush/pkg/compression"

func init() {
	link(KindXz, &compression.XZCompressor{})
}

//go:build !smush_nobzip2

package smush

import "github.com/neekrasov/smush/pkg/compression"

func init() {
	link(KindBzip2, &compression.Bzip2Compressor{})
}

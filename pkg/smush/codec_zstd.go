//go:build !smush_nozstd

package smush

import "github.com/neekrasov/smush/pkg/compression"

func init() {
	link(KindZstd, &compression.ZstdCompressor{})
}

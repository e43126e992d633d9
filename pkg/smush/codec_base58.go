//go:build !smush_nobase58

package smush

import "github.com/neekrasov/smush/pkg/compression"

func init() {
	link(KindBase58, &compression.Base58Compressor{})
}

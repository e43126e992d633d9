//go:build !smush_nobincode

package smush

import "github.com/neekrasov/smush/pkg/compression"

func init() {
	link(KindBinCode, &compression.BinCodeCompressor{})
}

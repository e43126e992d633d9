//go:build !smush_nogzip

package smush

import "github.com/neekrasov/smush/pkg/compression"

func init() {
	link(KindGzip, &compression.GzipCompressor{})
}

package config

import (
	"bytes"
	"io"
	"os"
)

const defaultConfigYaml = `logging:
  level: "info"
  output: ""
codecs:
  default_encoding: "zstd"
  default_quality: "default"
  disabled: []
limits:
  max_input_size: "64MB"
`

// GetConfigReader - opens path, or serves the built-in defaults when it cannot be opened.
func GetConfigReader(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}

	return io.NopCloser(bytes.NewBufferString(defaultConfigYaml)), nil
}

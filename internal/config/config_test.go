package config_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neekrasov/smush/internal/config"
	"github.com/neekrasov/smush/pkg/smush"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		expected    config.Config
		expectError bool
	}{
		{
			name: "Valid YAML config",
			content: `
logging:
  level: "debug"
  output: "/log"
codecs:
  default_encoding: "brotli"
  default_quality: "level5"
  disabled: ["lzma", "bzip2"]
limits:
  max_input_size: "16MB"
`,
			expected: config.Config{
				Logging: &config.LoggingConfig{Level: "debug", Output: "/log"},
				Codecs: &config.CodecsConfig{
					DefaultEncoding: smush.Brotli,
					DefaultQuality:  smush.Level5,
					Disabled:        []smush.Encoding{smush.Lzma, smush.Bzip2},
				},
				Limits: &config.LimitsConfig{MaxInputSize: "16MB"},
			},
		},
		{
			name: "Valid JSON config",
			content: `{
				"logging": {"level": "warn", "output": ""},
				"codecs": {"default_encoding": "xz", "default_quality": "maximum", "disabled": []},
				"limits": {"max_input_size": "1GB"}
			}`,
			expected: config.Config{
				Logging: &config.LoggingConfig{Level: "warn"},
				Codecs: &config.CodecsConfig{
					DefaultEncoding: smush.Xz,
					DefaultQuality:  smush.Maximum,
					Disabled:        []smush.Encoding{},
				},
				Limits: &config.LimitsConfig{MaxInputSize: "1GB"},
			},
		},
		{
			name: "Custom encoding is kept verbatim",
			content: `
codecs:
  default_encoding: "snappy"
`,
			expected: config.Config{
				Codecs: &config.CodecsConfig{DefaultEncoding: smush.ParseEncoding("snappy")},
			},
		},
		{
			name: "Invalid YAML config (invalid quality)",
			content: `
codecs:
  default_quality: "loud"
`,
			expectError: true,
		},
		{
			name: "Invalid YAML config (unknown field)",
			content: `
network:
  address: "127.0.0.1:3221"
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.ParseConfig(io.NopCloser(bytes.NewReader([]byte(tt.content))))
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestGetConfig_DefaultConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.GetConfig("/path/to/nonexistent/file.yaml")
	require.NoError(t, err)

	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.Output)

	require.NotNil(t, cfg.Codecs)
	assert.Equal(t, smush.Zstd, cfg.Codecs.DefaultEncoding)
	assert.Equal(t, smush.Default, cfg.Codecs.DefaultQuality)
	assert.Empty(t, cfg.Codecs.Disabled)

	require.NotNil(t, cfg.Limits)
	assert.Equal(t, "64MB", cfg.Limits.MaxInputSize)
}

func TestGetConfig_InvalidFileContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`invalid yaml content`), 0o600))

	_, err := config.GetConfig(path)
	assert.Error(t, err)
}

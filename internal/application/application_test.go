package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neekrasov/smush/internal/config"
	"github.com/neekrasov/smush/pkg/logger"
	"github.com/neekrasov/smush/pkg/sizeutil"
	"github.com/neekrasov/smush/pkg/smush"
)

func TestNew(t *testing.T) {
	t.Cleanup(logger.MockLogger)

	tests := []struct {
		name      string
		cfg       config.Config
		encoding  smush.Encoding
		quality   smush.Quality
		maxInput  int
		disabled  []smush.Encoding
		wantErr   bool
		expectErr error
	}{
		{
			name:     "empty config",
			cfg:      config.Config{},
			encoding: smush.Identity,
			quality:  smush.Default,
		},
		{
			name: "full config",
			cfg: config.Config{
				Logging: &config.LoggingConfig{Level: "error"},
				Codecs: &config.CodecsConfig{
					DefaultEncoding: smush.Gzip,
					DefaultQuality:  smush.Level9,
					Disabled:        []smush.Encoding{smush.Lzma, smush.Identity, smush.ParseEncoding("snappy")},
				},
				Limits: &config.LimitsConfig{MaxInputSize: "1KB"},
			},
			encoding: smush.Gzip,
			quality:  smush.Level9,
			maxInput: 1024,
			disabled: []smush.Encoding{smush.Lzma},
		},
		{
			name:    "disabled default encoding",
			wantErr: true,
			cfg: config.Config{
				Codecs: &config.CodecsConfig{
					DefaultEncoding: smush.Zstd,
					Disabled:        []smush.Encoding{smush.Zstd},
				},
			},
		},
		{
			name:    "custom default encoding",
			wantErr: true,
			cfg: config.Config{
				Codecs: &config.CodecsConfig{DefaultEncoding: smush.ParseEncoding("snappy")},
			},
		},
		{
			name: "invalid size",
			cfg: config.Config{
				Limits: &config.LimitsConfig{MaxInputSize: "lots"},
			},
			wantErr:   true,
			expectErr: sizeutil.ErrInvalidSize,
		},
		{
			name:    "invalid log level",
			wantErr: true,
			cfg: config.Config{
				Logging: &config.LoggingConfig{Level: "loud"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := New(&tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				if tt.expectErr != nil {
					assert.ErrorIs(t, err, tt.expectErr)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.encoding, app.DefaultEncoding())
			assert.Equal(t, tt.quality, app.DefaultQuality())
			assert.Equal(t, tt.maxInput, app.MaxInputSize())
			assert.True(t, app.Router().IsEncodingEnabled(smush.Identity))
			for _, e := range tt.disabled {
				assert.False(t, app.Router().IsEncodingEnabled(e), e.String())
			}
			assert.NotNil(t, app.Shell())
		})
	}
}

func TestCheckInput(t *testing.T) {
	t.Cleanup(logger.MockLogger)

	app, err := New(&config.Config{Limits: &config.LimitsConfig{MaxInputSize: "10B"}})
	require.NoError(t, err)

	assert.NoError(t, app.CheckInput(10))
	assert.ErrorIs(t, app.CheckInput(11), ErrInputTooLarge)

	unlimited, err := New(&config.Config{})
	require.NoError(t, err)
	assert.NoError(t, unlimited.CheckInput(1<<30))
}

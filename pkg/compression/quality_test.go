package compression

import (
	"errors"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuality(t *testing.T) {
	t.Parallel()

	for _, q := range Qualities() {
		parsed, err := ParseQuality(q.String())
		require.NoError(t, err)
		assert.Equal(t, q, parsed)
	}

	for _, token := range []string{"", "Default", "level0", "level10", "max", "fastest"} {
		_, err := ParseQuality(token)
		assert.ErrorIs(t, err, ErrInvalidQuality, token)

		var qualityErr *InvalidQualityError
		require.True(t, errors.As(err, &qualityErr))
		assert.Equal(t, token, qualityErr.Token)
	}
}

func TestQualityText(t *testing.T) {
	t.Parallel()

	text, err := Level7.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "level7", string(text))

	var q Quality
	require.NoError(t, q.UnmarshalText([]byte("maximum")))
	assert.Equal(t, Maximum, q)
	assert.Error(t, q.UnmarshalText([]byte("loud")))
	assert.Equal(t, Maximum, q)

	_, err = Quality(42).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidQuality)
}

func TestQualityLevel(t *testing.T) {
	t.Parallel()

	assert.Len(t, Qualities(), 11)
	assert.Equal(t, 0, Default.Level())
	assert.Equal(t, 5, Level5.Level())
	assert.Equal(t, 10, Maximum.Level())
	assert.Equal(t, 0, Quality(200).Level())
	assert.False(t, Quality(11).Valid())
	assert.Equal(t, "quality(11)", Quality(11).String())
}

func TestQualityMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		quality Quality
		flate   int
		zstd    zstd.EncoderLevel
		brotli  int
		lz4     lz4.CompressionLevel
		dictCap int
		bzip2   int
	}{
		{Default, 6, zstd.EncoderLevelFromZstd(3), 6, lz4.Level4, 8 << 20, 6},
		{Level1, 1, zstd.EncoderLevelFromZstd(1), 1, lz4.Level1, 256 << 10, 1},
		{Level4, 4, zstd.EncoderLevelFromZstd(4), 4, lz4.Level4, 4 << 20, 4},
		{Level9, 9, zstd.EncoderLevelFromZstd(9), 9, lz4.Level9, 16 << 20, 9},
		{Maximum, 9, zstd.SpeedBestCompression, 11, lz4.Level9, 16 << 20, 9},
		{Quality(99), 6, zstd.EncoderLevelFromZstd(3), 6, lz4.Level4, 8 << 20, 6},
	}

	for _, tt := range tests {
		t.Run(tt.quality.String(), func(t *testing.T) {
			assert.Equal(t, tt.flate, flateLevel(tt.quality))
			assert.Equal(t, tt.zstd, zstdLevel(tt.quality))
			assert.Equal(t, tt.brotli, brotliQuality(tt.quality))
			assert.Equal(t, tt.lz4, lz4Level(tt.quality))
			assert.Equal(t, tt.dictCap, lzmaDictCap(tt.quality))
			assert.Equal(t, tt.bzip2, bzip2Level(tt.quality))
		})
	}
}

func TestLevelTableCapsToNativeMaximum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, levelTable(Level9, 2, 4))
	assert.Equal(t, 4, levelTable(Maximum, 2, 4))
	assert.Equal(t, 2, levelTable(Default, 2, 4))
	assert.Equal(t, 3, levelTable(Level3, 2, 4))
}

package report_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neekrasov/smush/internal/report"
	"github.com/neekrasov/smush/pkg/logger"
	"github.com/neekrasov/smush/pkg/smush"
)

type lyingCodec struct {
	*smush.Router
}

func (l lyingCodec) Decode(data []byte, e smush.Encoding) ([]byte, error) {
	out, err := l.Router.Decode(data, e)
	if err == nil && e == smush.Base58 && len(out) > 0 {
		out[0] ^= 0xff
	}
	return out, err
}

func TestBuild(t *testing.T) {
	t.Parallel()
	logger.MockLogger()

	data := bytes.Repeat([]byte("smush report "), 200)
	router := smush.NewRouter(smush.NewRegistry(smush.WithEncodings(smush.Gzip, smush.Zstd, smush.Base58)))

	rows, err := report.Build(context.Background(), router, data,
		report.WithEncodings(smush.Gzip, smush.Brotli, smush.Zstd, smush.Base58),
		report.WithQualities(smush.Level1, smush.Maximum),
		report.WithConcurrency(2),
	)
	require.NoError(t, err)

	var got []string
	for _, r := range rows {
		got = append(got, r.Encoding.String()+"/"+r.Quality.String())
	}
	assert.Equal(t, []string{
		"gzip/level1", "gzip/maximum",
		"zstd/level1", "zstd/maximum",
		"base58/level1", "base58/maximum",
	}, got)

	for _, r := range rows[:4] {
		assert.Greater(t, r.Delta(len(data)), 0.0, r.Encoding.String())
	}
	assert.Less(t, rows[4].Delta(len(data)), 0.0)
}

func TestBuildDetectsMismatch(t *testing.T) {
	t.Parallel()
	logger.MockLogger()

	codec := lyingCodec{smush.NewRouter(nil)}
	_, err := report.Build(context.Background(), codec, []byte("payload"),
		report.WithEncodings(smush.Identity, smush.Base58))
	assert.ErrorIs(t, err, report.ErrRoundTrip)
}

func TestBuildCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := report.Build(ctx, smush.NewRouter(nil), []byte("payload"))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWrite(t *testing.T) {
	t.Parallel()

	rows := []report.Row{
		{Encoding: smush.Gzip, Quality: smush.Default, Size: 25},
		{Encoding: smush.Base58, Quality: smush.Maximum, Size: 150},
	}

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, 100, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ENCODING"))
	assert.True(t, strings.HasPrefix(lines[1], "identity"))
	assert.Contains(t, lines[2], "75.00% smaller")
	assert.Contains(t, lines[3], "50.00% larger")

	assert.Equal(t, 0.0, report.Row{Size: 10}.Delta(0))
}

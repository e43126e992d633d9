package identity

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDataIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		algorithm Algorithm
		data      string
		wantHex   string
	}{
		{
			name:      "sha256 abc",
			algorithm: SHA256,
			data:      "abc",
			wantHex:   "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name:      "sha256 empty",
			algorithm: SHA256,
			data:      "",
			wantHex:   "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:      "sha3-256 abc",
			algorithm: SHA3_256,
			data:      "abc",
			wantHex:   "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ComputeDataIdentity([]byte(tt.data), WithAlgorithm(tt.algorithm))
			require.NoError(t, err)
			assert.Equal(t, tt.wantHex, hex.EncodeToString(id.Raw))

			raw, err := base58.Decode(id.Text)
			require.NoError(t, err)
			assert.Equal(t, id.Raw, raw)
		})
	}
}

func TestAlgorithmsDiffer(t *testing.T) {
	t.Parallel()

	data := []byte("payload")
	seen := map[string]Algorithm{}
	for _, a := range Algorithms() {
		id, err := ComputeDataIdentity(data, WithAlgorithm(a))
		require.NoError(t, err)
		assert.Len(t, id.Raw, 32, a)
		_, dup := seen[id.Text]
		assert.False(t, dup, a)
		seen[id.Text] = a
	}

	sha, err := ComputeDataIdentity(data)
	require.NoError(t, err)
	assert.Equal(t, ComputeIdentity(data), sha.Text)
}

func TestUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	data := []byte("payload")

	_, err := ComputeDataIdentity(data, WithAlgorithm("md5"))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = ComputeDataIdentity(data, WithAlgorithm("SHA256"))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = ComputeReaderIdentity(strings.NewReader("payload"), WithAlgorithm("sha-256"))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	a, err := ParseAlgorithm("blake2b-256")
	require.NoError(t, err)
	assert.Equal(t, BLAKE2b256, a)

	_, err = ParseAlgorithm("md5")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken") }

func TestComputeReaderAndFileIdentity(t *testing.T) {
	t.Parallel()

	data := strings.Repeat("smush ", 1000)
	want, err := ComputeDataIdentity([]byte(data), WithAlgorithm(BLAKE2b256))
	require.NoError(t, err)

	got, err := ComputeReaderIdentity(strings.NewReader(data), WithAlgorithm(BLAKE2b256))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	got, err = ComputeFileIdentity(path, WithAlgorithm(BLAKE2b256))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ComputeFileIdentity(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ComputeReaderIdentity(failingReader{})
	assert.ErrorContains(t, err, "broken")
}

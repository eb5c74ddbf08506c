package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorplex-labs/cutoff/internal/curve"
)

const splitJSON = `{"labels":[0,0,0,1,1],"scores":[0.1,0.2,0.4,0.6,0.9]}`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func assertSampleSplit(t *testing.T, split Split) {
	t.Helper()
	assert.Equal(t, []int{0, 0, 0, 1, 1}, split.Labels)
	assert.Equal(t, []float64{0.1, 0.2, 0.4, 0.6, 0.9}, split.Scores)
	assert.Equal(t, 5, split.Len())
	assert.Equal(t, 2, split.Positives())
}

func TestDecode(t *testing.T) {
	split, err := Decode(strings.NewReader(splitJSON))
	require.NoError(t, err)
	assertSampleSplit(t, split)
}

func TestDecodeRejectsInvalidSplits(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"length mismatch", `{"labels":[0,1],"scores":[0.5]}`, curve.ErrLengthMismatch},
		{"empty", `{"labels":[],"scores":[]}`, curve.ErrEmptyInput},
		{"non-binary label", `{"labels":[0,2],"scores":[0.5,0.5]}`, curve.ErrInvalidInput},
		{"score above one", `{"labels":[0,1],"scores":[0.5,1.5]}`, curve.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Decode(strings.NewReader(`{"labels":`))
	assert.Error(t, err)
}

func TestLoadPlain(t *testing.T) {
	split, err := Load(writeFile(t, "split.json", []byte(splitJSON)))
	require.NoError(t, err)
	assertSampleSplit(t, split)
}

func TestLoadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "split.json.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte(splitJSON))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	split, err := Load(path)
	require.NoError(t, err)
	assertSampleSplit(t, split)
}

func TestLoadZstd(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll([]byte(splitJSON), nil)
	require.NoError(t, enc.Close())

	split, err := Load(writeFile(t, "split.json.zst", compressed))
	require.NoError(t, err)
	assertSampleSplit(t, split)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "broken.json.gz", []byte("not gzip")))
	assert.Error(t, err)
}

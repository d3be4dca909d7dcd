package exporter

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/config"
)

func newTestCSVWriter(t *testing.T) (*CSVWriter, string) {
	t.Helper()

	tempDir := t.TempDir()
	paths := &config.Paths{
		BaseDir:   tempDir,
		OutputDir: filepath.Join(tempDir, "output"),
	}
	return NewCSVWriter(paths, nil), tempDir
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestStreamWriter(t *testing.T) {
	writer, tempDir := newTestCSVWriter(t)

	stream, err := writer.CreateStreamWriter("stream.csv", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "output", "stream.csv"), stream.Path())
	assert.NoFileExists(t, stream.Path(), "destination appears only on Close")

	require.NoError(t, stream.WriteRecord([]string{"1", "2"}))
	require.NoError(t, stream.WriteFloats([]float64{3.5, math.NaN()}))
	assert.Equal(t, 2, stream.Rows())
	require.NoError(t, stream.Close())

	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}, {"3.5", ""}}, readCSV(t, stream.Path()))

	entries, err := os.ReadDir(filepath.Dir(stream.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be renamed away")
}

func TestStreamWriter_ReplacesExisting(t *testing.T) {
	writer, tempDir := newTestCSVWriter(t)
	path := filepath.Join(tempDir, "abs.csv")
	require.NoError(t, os.WriteFile(path, []byte("old\nold\nold\n"), 0644))

	stream, err := writer.CreateStreamWriter(path, []string{"new"})
	require.NoError(t, err)
	require.NoError(t, stream.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(content))
}

func TestStreamWriter_Abort(t *testing.T) {
	writer, tempDir := newTestCSVWriter(t)
	path := filepath.Join(tempDir, "keep.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0644))

	stream, err := writer.CreateStreamWriter(path, []string{"x"})
	require.NoError(t, err)
	require.NoError(t, stream.WriteFloats([]float64{1}))
	stream.Abort()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(content))

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCSVWriter_NilPathsUsesPathAsGiven(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.csv")

	stream, err := NewCSVWriter(nil, nil).CreateStreamWriter(path, nil)
	require.NoError(t, err)
	require.NoError(t, stream.WriteRecord([]string{"v"}))
	require.NoError(t, stream.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v\n", string(content))
}

func TestCSVWriter_Errors(t *testing.T) {
	writer, tempDir := newTestCSVWriter(t)

	// a regular file where a directory is expected
	blocker := filepath.Join(tempDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := writer.CreateStreamWriter(filepath.Join(blocker, "out.csv"), nil)
	assert.Error(t, err)
}

package internals

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

// canonicalTempDir returns a symlink-free temporary directory,
// so relativization against the working directory is exact
func canonicalTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// ghostEntry fakes a directory entry whose file does not exist
type ghostEntry struct {
	name string
}

func (g ghostEntry) Name() string               { return g.name }
func (g ghostEntry) IsDir() bool                { return false }
func (g ghostEntry) Type() fs.FileMode          { return 0 }
func (g ghostEntry) Info() (fs.FileInfo, error) { return nil, fs.ErrNotExist }

func TestCreateEmitsRelativeSortedRecords(t *testing.T) {
	base := canonicalTempDir(t)
	writeFile(t, base, "b.txt", []byte("123456789"))
	writeFile(t, base, "a.txt", nil)
	chdir(t, base)

	var emitted []Record
	result, err := Create([]string{"."}, CreateOptions{}, func(record Record) {
		emitted = append(emitted, record)
	})
	require.NoError(t, err)
	require.Nil(t, result.Failed)

	want := []Record{
		{Path: "a.txt", Checksum: 0x00000000},
		{Path: "b.txt", Checksum: 0xCBF43926},
	}
	assert.Equal(t, want, emitted)
	assert.Equal(t, want, result.Records)
}

func TestCreateKeepsAbsolutePathOutsideWorkingDirectory(t *testing.T) {
	base := canonicalTempDir(t)
	outside := canonicalTempDir(t)
	file := writeFile(t, outside, "far.txt", []byte("far"))
	chdir(t, base)

	result, err := Create([]string{file}, CreateOptions{}, func(Record) {})
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, file, result.Records[0].Path)
	assert.True(t, filepath.IsAbs(result.Records[0].Path))
}

func TestCreateWritesOutFile(t *testing.T) {
	base := canonicalTempDir(t)
	writeFile(t, base, "a.txt", []byte("123456789"))
	chdir(t, base)

	outFile := filepath.Join(base, "checksums.sfv")
	_, err := Create([]string{"a.txt"}, CreateOptions{OutFile: outFile}, func(Record) {})
	require.NoError(t, err)

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "a.txt CBF43926\n", string(content))
}

func TestCreateAbortsWithoutPartialOutFile(t *testing.T) {
	base := canonicalTempDir(t)
	writeFile(t, base, "a.txt", []byte("ok"))
	chdir(t, base)

	// inject a listing entry whose file cannot be opened
	haunted := func(dir string) ([]os.DirEntry, error) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		return append(entries, ghostEntry{name: "ghost.txt"}), nil
	}

	outFile := filepath.Join(base, "checksums.sfv")
	opts := CreateOptions{OutFile: outFile, ReadDir: haunted}
	_, err := Create([]string{"."}, opts, func(Record) {})
	require.Error(t, err)

	_, statErr := os.Stat(outFile)
	assert.True(t, os.IsNotExist(statErr), "no partial output file may be written on a fatal error")
}

func TestCreateKeepGoingAggregatesFailures(t *testing.T) {
	base := canonicalTempDir(t)
	writeFile(t, base, "a.txt", []byte("123456789"))
	chdir(t, base)

	haunted := func(dir string) ([]os.DirEntry, error) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		return append(entries, ghostEntry{name: "ghost.txt"}), nil
	}

	outFile := filepath.Join(base, "checksums.sfv")
	opts := CreateOptions{KeepGoing: true, OutFile: outFile, ReadDir: haunted}
	result, err := Create([]string{"."}, opts, func(Record) {})
	require.NoError(t, err)

	require.Error(t, result.Failed)
	assert.Contains(t, result.Failed.Error(), "ghost.txt")

	// successful records are still written
	content, readErr := os.ReadFile(outFile)
	require.NoError(t, readErr)
	assert.Equal(t, "a.txt CBF43926\n", string(content))
}

//go:build linux

package upath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/priyxstudio/entries/upath"
)

func withFilenameEncoding(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, upath.SetFilenameEncoding(name))
	t.Cleanup(func() {
		require.NoError(t, upath.SetFilenameEncoding(upath.DefaultFilenameEncoding))
	})
}

func entryNames(t *testing.T, dir upath.Path) []string {
	t.Helper()
	entries, err := dir.Entries()
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.String())
	}
	return names
}

func TestFilenameEncoding_Default(t *testing.T) {
	require.Equal(t, "utf-8", upath.FilenameEncoding())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "caf\xe9"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "naïve"), nil, 0o644))

	// Invalid UTF-8 is replaced rather than passed through.
	require.ElementsMatch(t, []string{".", "..", "caf�", "naïve"}, entryNames(t, upath.New(dir)))
}

func TestFilenameEncoding_Latin1(t *testing.T) {
	withFilenameEncoding(t, "latin1")
	require.Equal(t, "windows-1252", upath.FilenameEncoding())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "caf\xe9"), nil, 0o644))

	require.ElementsMatch(t, []string{".", "..", "café"}, entryNames(t, upath.New(dir)))
	require.Equal(t, "caf\xe9", upath.New("café").Native())
}

func TestFilenameEncoding_Unknown(t *testing.T) {
	err := upath.SetFilenameEncoding("klingon")
	require.Error(t, err)
	require.Equal(t, "utf-8", upath.FilenameEncoding())
}

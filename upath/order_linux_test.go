//go:build linux

package upath_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/priyxstudio/entries/upath"
)

// Readdirnames reads the same getdents64 stream without the dot entries, so
// the two listings must agree entry for entry.
func TestEntryIterator_NativeOrder(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 300; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "f"+strconv.Itoa(i)), nil, 0o644))
	}

	f, err := os.Open(dir)
	require.NoError(t, err)
	want, err := f.Readdirnames(-1)
	require.NoError(t, f.Close())
	require.NoError(t, err)

	entries, err := upath.New(dir).Entries()
	require.NoError(t, err)

	var got []string
	dots := 0
	for _, e := range entries {
		switch e.String() {
		case ".", "..":
			dots++
		default:
			got = append(got, e.String())
		}
	}
	require.Equal(t, 2, dots)
	require.Equal(t, want, got)
}

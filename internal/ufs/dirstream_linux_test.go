//go:build linux

package ufs_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/priyxstudio/entries/internal/ufs"
)

func TestDirStream_NativeOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for i := 0; i < 300; i++ {
		touch(t, filepath.Join(dir, "f"+strconv.Itoa(i)))
	}

	f, err := os.Open(dir)
	require.NoError(t, err)
	want, err := f.Readdirnames(-1)
	require.NoError(t, f.Close())
	require.NoError(t, err)

	d, err := ufs.OpenDirStream(dir)
	require.NoError(t, err)
	defer d.Close()

	var got []string
	for _, name := range readAll(t, d) {
		if name != "." && name != ".." {
			got = append(got, name)
		}
	}
	require.Equal(t, want, got)
}

//go:build unix

package ufs_test

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"

	"emperror.dev/errors"
	"github.com/stretchr/testify/require"

	"github.com/priyxstudio/entries/internal/ufs"
)

func readAll(t *testing.T, d *ufs.DirStream) []string {
	t.Helper()

	var names []string
	for {
		name, err := d.Next()
		if err == io.EOF {
			return names
		}
		require.NoError(t, err)
		names = append(names, string(name))
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestDirStream_ListsEverything(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.txt"))
	touch(t, filepath.Join(dir, "b.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	d, err := ufs.OpenDirStream(dir)
	require.NoError(t, err)
	defer d.Close()

	require.ElementsMatch(t, []string{".", "..", "a.txt", "b.txt", "sub"}, readAll(t, d))

	// The end of the listing is sticky.
	for i := 0; i < 3; i++ {
		_, err := d.Next()
		require.ErrorIs(t, err, io.EOF)
	}
}

func TestDirStream_LargeDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := []string{".", ".."}
	for i := 0; i < 600; i++ {
		// Long names push the listing across several getdents64 batches.
		name := strings.Repeat("x", 100) + strconv.Itoa(i)
		touch(t, filepath.Join(dir, name))
		want = append(want, name)
	}

	d, err := ufs.OpenDirStream(dir)
	require.NoError(t, err)
	defer d.Close()

	require.ElementsMatch(t, want, readAll(t, d))
}

func TestDirStream_OpenErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	touch(t, file)

	tests := []struct {
		name     string
		path     string
		sentinel error
		errno    syscall.Errno
	}{
		{name: "missing", path: filepath.Join(dir, "missing"), sentinel: ufs.ErrNotExist, errno: syscall.ENOENT},
		{name: "not a directory", path: file, sentinel: ufs.ErrNotDirectory, errno: syscall.ENOTDIR},
		{name: "empty path", path: "", sentinel: ufs.ErrNotExist, errno: syscall.ENOENT},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ufs.OpenDirStream(tc.path)
			require.Nil(t, d)
			require.ErrorIs(t, err, tc.sentinel)

			var pe *ufs.PathError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, "opendir", pe.Op)
			require.Equal(t, tc.path, pe.Path)

			errno, ok := pe.Errno()
			require.True(t, ok)
			require.Equal(t, tc.errno, errno)
		})
	}
}

func TestDirStream_PermissionDenied(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0o000))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, err := ufs.OpenDirStream(dir)
	require.ErrorIs(t, err, ufs.ErrPermission)
}

func TestDirStream_Close(t *testing.T) {
	t.Parallel()

	d, err := ufs.OpenDirStream(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())

	_, err = d.Next()
	require.ErrorIs(t, err, ufs.ErrClosed)
}

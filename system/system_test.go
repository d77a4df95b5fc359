package system

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/priyxstudio/entries/internal/ufs"
	"github.com/priyxstudio/entries/upath"
)

func TestGetSystemInformation(t *testing.T) {
	info, err := GetSystemInformation()
	require.NoError(t, err)

	require.Equal(t, Version, info.Version)
	require.Equal(t, runtime.GOOS, info.System.OSType)
	require.Equal(t, runtime.GOARCH, info.System.Architecture)
	require.NotEmpty(t, info.System.OS)
	require.NotEmpty(t, info.System.KernelVersion)
	require.Equal(t, ufs.Backend, info.Listing.Backend)
	require.Equal(t, upath.FilenameEncoding(), info.Listing.FilenameEncoding)
}

func TestFilesystemFor(t *testing.T) {
	fs, err := FilesystemFor(t.TempDir())
	require.NoError(t, err)

	// Sandboxes don't always expose a partition table, only check what was found.
	if fs.Type != "" {
		require.NotEmpty(t, fs.Mountpoint)
	}
}

func TestFilesystemFor_Missing(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("only the statfs lookup fails on a missing path")
	}

	_, err := FilesystemFor("/definitely/not/here")
	require.Error(t, err)
}

//go:build unix

package ufs

import "golang.org/x/sys/unix"

// Re-using the same names as Go's official `unix` and `os` package do.
const (
	// O_RDONLY opens the file read-only.
	O_RDONLY = unix.O_RDONLY
	// O_DIRECTORY opens a directory only. If the entry is not a directory an
	// error will be returned.
	O_DIRECTORY = unix.O_DIRECTORY
	O_CLOEXEC   = unix.O_CLOEXEC
)

// openDirFlags are the flags every Unix backend opens a listing with. Symlinks
// are followed, matching opendir(3).
const openDirFlags = O_RDONLY | O_DIRECTORY | O_CLOEXEC

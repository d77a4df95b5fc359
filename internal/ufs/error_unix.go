//go:build unix

package ufs

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// errnoToPathError converts an errno into a proper path error.
func errnoToPathError(err syscall.Errno, op, path string) error {
	return &PathError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// errnoToSentinel maps an errno onto one of the package sentinels, or nil
// when there is no equivalent.
func errnoToSentinel(err syscall.Errno) error {
	switch err {
	// File exists
	case unix.EEXIST:
		return ErrExist
	// Is a directory
	case unix.EISDIR:
		return ErrIsDirectory
	// Not a directory
	case unix.ENOTDIR:
		return ErrNotDirectory
	// No such file or directory
	case unix.ENOENT:
		return ErrNotExist
	// Permission denied, Operation not permitted
	case unix.EACCES, unix.EPERM:
		return ErrPermission
	// Too many levels of symbolic links
	case unix.ELOOP:
		return ErrBadPathResolution
	default:
		return nil
	}
}

//go:build windows

package ufs

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// errnoToPathError converts an errno into a proper path error.
// On Windows, syscall.Errno matches Windows error codes.
func errnoToPathError(err syscall.Errno, op, path string) error {
	return &PathError{Op: op, Path: path, Err: err}
}

// errnoToSentinel maps a GetLastError code onto one of the package sentinels,
// or nil when there is no equivalent.
func errnoToSentinel(err syscall.Errno) error {
	switch err {
	case windows.ERROR_FILE_EXISTS, windows.ERROR_ALREADY_EXISTS:
		return ErrExist
	case windows.ERROR_PATH_NOT_FOUND, windows.ERROR_FILE_NOT_FOUND:
		return ErrNotExist
	case windows.ERROR_ACCESS_DENIED:
		return ErrPermission
	case windows.ERROR_DIRECTORY:
		return ErrNotDirectory
	default:
		return nil
	}
}

package ufs

import (
	"io/fs"
	"syscall"

	"emperror.dev/errors"
)

var (
	// ErrExist is returned when a path already exists.
	ErrExist = fs.ErrExist
	// ErrNotExist is returned when a path does not exist.
	ErrNotExist = fs.ErrNotExist
	// ErrPermission is returned when access to a path is denied.
	ErrPermission = fs.ErrPermission
	// ErrClosed is returned when a listing is used after it was closed.
	ErrClosed = fs.ErrClosed
)

const (
	// ErrIsDirectory is returned when a directory was given where a file was
	// expected.
	ErrIsDirectory = errors.Sentinel("is a directory")
	// ErrNotDirectory is returned when a listing is opened on something that
	// is not a directory.
	ErrNotDirectory = errors.Sentinel("not a directory")
	// ErrBadPathResolution is returned when a path can't be resolved, for
	// example because of a symlink loop.
	ErrBadPathResolution = errors.Sentinel("bad path resolution")
)

// PathError records a failed native directory operation along with the path
// it was attempted on. Err holds the raw native error code whenever the
// operating system reported one (errno on Unix, GetLastError on Windows).
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Errno returns the native error code carried by the error, if any.
func (e *PathError) Errno() (syscall.Errno, bool) {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return errno, true
	}
	return 0, false
}

// Is reports whether the native code maps to target, so callers can match on
// the package sentinels without knowing the platform's codes.
func (e *PathError) Is(target error) bool {
	errno, ok := e.Errno()
	if !ok {
		return false
	}
	sentinel := errnoToSentinel(errno)
	return sentinel != nil && sentinel == target
}

// wrapError converts err into a *PathError, keeping the native code intact
// when there is one.
func wrapError(err error, op, path string) error {
	if err == nil {
		return nil
	}
	var pe *PathError
	if errors.As(err, &pe) {
		return pe
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errnoToPathError(errno, op, path)
	}
	return &PathError{Op: op, Path: path, Err: err}
}

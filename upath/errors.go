package upath

import (
	"emperror.dev/errors"

	"github.com/priyxstudio/entries/internal/ufs"
)

// OSError is returned when the operating system refuses a directory
// operation. Errno returns the native error code: errno on Unix,
// GetLastError on Windows.
type OSError = ufs.PathError

// ErrIteratorFinished is the panic value raised when an EntryIterator that
// has no open listing is advanced. Doing so is a programming error: check
// Done before calling Next.
const ErrIteratorFinished = errors.Sentinel("upath: advanced a finished entry iterator")

var (
	ErrNotExist          = ufs.ErrNotExist
	ErrExist             = ufs.ErrExist
	ErrPermission        = ufs.ErrPermission
	ErrClosed            = ufs.ErrClosed
	ErrNotDirectory      = ufs.ErrNotDirectory
	ErrIsDirectory       = ufs.ErrIsDirectory
	ErrBadPathResolution = ufs.ErrBadPathResolution
)

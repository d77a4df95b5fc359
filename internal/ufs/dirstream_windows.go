//go:build windows

package ufs

import (
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/windows"
)

// Backend names the system interface used to list directories.
const Backend = "FindFirstFileW"

// DirStream is an open FindFirstFileW search.
type DirStream struct {
	h    windows.Handle
	path string

	data    windows.Win32finddata
	pending bool // data holds an entry that was not returned yet
	name    []byte
	eof     bool
	closed  bool

	cleanup runtime.Cleanup
}

// OpenDirStream opens a directory listing on path. The first entry is fetched
// by FindFirstFileW itself and handed out by the first call to Next.
func OpenDirStream(path string) (*DirStream, error) {
	if path == "" {
		return nil, errnoToPathError(windows.ERROR_PATH_NOT_FOUND, opOpenDir, path)
	}

	pattern, err := windows.UTF16PtrFromString(strings.TrimRight(path, `\/`) + searchSuffix)
	if err != nil {
		return nil, errnoToPathError(windows.ERROR_INVALID_NAME, opOpenDir, path)
	}

	d := &DirStream{path: path}
	h, err := windows.FindFirstFile(pattern, &d.data)
	if err != nil {
		if isEmptySearch(path, err) {
			return emptyDirStream(path), nil
		}
		return nil, wrapError(err, opOpenDir, path)
	}

	d.h = h
	d.pending = true
	d.cleanup = runtime.AddCleanup(d, findClose, h)
	return d, nil
}

// isEmptySearch reports whether a failed FindFirstFileW only means that the
// directory has nothing to list. Drive roots report neither "." nor "..", so an
// empty one fails with ERROR_FILE_NOT_FOUND.
func isEmptySearch(path string, err error) bool {
	if err != windows.ERROR_FILE_NOT_FOUND {
		return false
	}
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	return err == nil && attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0
}

// emptyDirStream is a listing that holds no handle and is already at its end.
func emptyDirStream(path string) *DirStream {
	return &DirStream{h: windows.InvalidHandle, path: path, eof: true}
}

func findClose(h windows.Handle) {
	_ = windows.FindClose(h)
}

// Next returns the next entry name, converted from UTF-16 to UTF-8.
func (d *DirStream) Next() ([]byte, error) {
	if d.closed {
		return nil, &PathError{Op: opReadDir, Path: d.path, Err: ErrClosed}
	}
	if d.eof {
		return nil, io.EOF
	}

	if d.pending {
		d.pending = false
	} else if err := windows.FindNextFile(d.h, &d.data); err != nil {
		if err == windows.ERROR_NO_MORE_FILES {
			d.eof = true
			return nil, io.EOF
		}
		return nil, wrapError(err, opReadDir, d.path)
	}

	d.name = append(d.name[:0], windows.UTF16ToString(d.data.FileName[:])...)
	return d.name, nil
}

// Close releases the search handle.
func (d *DirStream) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.h == windows.InvalidHandle {
		return nil
	}

	d.cleanup.Stop()
	h := d.h
	d.h = windows.InvalidHandle
	if err := windows.FindClose(h); err != nil {
		return wrapError(err, opCloseDir, d.path)
	}
	return nil
}

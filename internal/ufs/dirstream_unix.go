//go:build unix && !linux

package ufs

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

const readDirBatchSize = 256

// Backend names the system interface used to list directories.
const Backend = "readdirnames"

// dotEntries are reported ahead of the listing because the Go runtime drops
// them from (*os.File).Readdirnames.
var dotEntries = [...]string{".", ".."}

// DirStream is an open directory listing backed by an *os.File. The file owns
// the descriptor, so the runtime closes it if the stream is never closed.
type DirStream struct {
	f    *os.File
	path string

	dots    int
	pending []string
	name    []byte
	eof     bool
}

// OpenDirStream opens a directory listing on path.
func OpenDirStream(path string) (*DirStream, error) {
	for {
		fd, err := unix.Open(path, openDirFlags, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, wrapError(err, opOpenDir, path)
		}
		return &DirStream{f: os.NewFile(uintptr(fd), path), path: path}, nil
	}
}

// Next returns the next entry name.
func (d *DirStream) Next() ([]byte, error) {
	if d.f == nil {
		return nil, &PathError{Op: opReadDir, Path: d.path, Err: ErrClosed}
	}

	if d.dots < len(dotEntries) {
		d.name = append(d.name[:0], dotEntries[d.dots]...)
		d.dots++
		return d.name, nil
	}

	for len(d.pending) == 0 {
		if d.eof {
			return nil, io.EOF
		}

		names, err := d.f.Readdirnames(readDirBatchSize)
		if err == io.EOF {
			d.eof = true
		} else if err != nil {
			return nil, wrapError(err, opReadDir, d.path)
		}
		d.pending = names
	}

	d.name = append(d.name[:0], d.pending[0]...)
	d.pending = d.pending[1:]
	return d.name, nil
}

// Close releases the directory descriptor.
func (d *DirStream) Close() error {
	if d.f == nil {
		return nil
	}

	f := d.f
	d.f = nil
	d.pending = nil
	if err := f.Close(); err != nil {
		return wrapError(err, opCloseDir, d.path)
	}
	return nil
}

//go:build linux

package ufs

import (
	"encoding/binary"
	"io"
	"runtime"

	"emperror.dev/errors"
	"golang.org/x/sys/unix"
)

// linux_dirent64 offsets (from linux/dirent.h):
//
//	struct linux_dirent64 {
//	    ino64_t        d_ino;    // 8 bytes  (offset 0)
//	    off64_t        d_off;    // 8 bytes  (offset 8)
//	    unsigned short d_reclen; // 2 bytes  (offset 16)
//	    unsigned char  d_type;   // 1 byte   (offset 18)
//	    char           d_name[]; // variable (offset 19)
//	};
const (
	direntInoOffset    = 0
	direntReclenOffset = 16
	direntNameOffset   = 19
	direntMinSize      = direntNameOffset

	direntBufferSize = 8192
)

// Backend names the system interface used to list directories.
const Backend = "getdents64"

var errInvalidDirent = errors.New("invalid dirent")

// DirStream is an open getdents64 listing.
type DirStream struct {
	fd   int
	path string

	buf  []byte
	data []byte // unparsed remainder of buf
	eof  bool

	cleanup runtime.Cleanup
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

		d := &DirStream{fd: fd, path: path}
		d.cleanup = runtime.AddCleanup(d, closeFd, fd)
		return d, nil
	}
}

func closeFd(fd int) {
	_ = unix.Close(fd)
}

// Next returns the next entry name.
func (d *DirStream) Next() ([]byte, error) {
	if d.fd < 0 {
		return nil, &PathError{Op: opReadDir, Path: d.path, Err: ErrClosed}
	}

	for {
		if len(d.data) == 0 {
			if d.eof {
				return nil, io.EOF
			}
			if err := d.fill(); err != nil {
				return nil, err
			}
			continue
		}

		if len(d.data) < direntMinSize {
			return nil, &PathError{Op: opReadDir, Path: d.path, Err: errInvalidDirent}
		}

		reclen := int(binary.NativeEndian.Uint16(d.data[direntReclenOffset:]))
		if reclen < direntMinSize || reclen > len(d.data) {
			return nil, &PathError{Op: opReadDir, Path: d.path, Err: errInvalidDirent}
		}

		entry := d.data[:reclen]
		d.data = d.data[reclen:]

		// Deleted entries keep their record but have a zero inode.
		if binary.NativeEndian.Uint64(entry[direntInoOffset:]) == 0 {
			continue
		}

		// Name ends at the first NUL byte.
		name := entry[direntNameOffset:]
		for i, b := range name {
			if b == 0 {
				name = name[:i]
				break
			}
		}
		if len(name) == 0 {
			continue
		}

		return name, nil
	}
}

// fill reads the next batch of raw dirents into the buffer.
func (d *DirStream) fill() error {
	if d.buf == nil {
		d.buf = make([]byte, direntBufferSize)
	}

	// Retry on EINTR without an upper bound, matching Go's standard library.
	var (
		n   int
		err error
	)
	for {
		n, err = unix.ReadDirent(d.fd, d.buf)
		if err == unix.EINTR {
			continue
		}
		break
	}
	if err != nil {
		return wrapError(err, opReadDir, d.path)
	}

	if n <= 0 {
		d.eof = true
		d.data = nil
		return nil
	}

	d.data = d.buf[:n]
	return nil
}

// Close releases the directory descriptor.
func (d *DirStream) Close() error {
	if d.fd < 0 {
		return nil
	}

	d.cleanup.Stop()
	fd := d.fd
	d.fd = -1
	d.data = nil
	d.buf = nil

	// We intentionally do not retry close(2) on EINTR.
	if err := unix.Close(fd); err != nil {
		return wrapError(err, opCloseDir, d.path)
	}
	return nil
}

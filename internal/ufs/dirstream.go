package ufs

// ============================================================================
// Native directory listing contract
// ============================================================================
//
// Every supported OS family provides a DirStream type and an OpenDirStream
// function via build-tagged files:
//   - Linux (getdents64):                       dirstream_linux.go
//   - Other Unix (darwin, the BSDs, ...):       dirstream_unix.go
//   - Windows (FindFirstFileW/FindNextFileW):   dirstream_windows.go
//
// There is no runtime dispatch. The backend is chosen at build time and this
// file only checks that each build provides the expected surface.
//
// Semantics every backend must honor:
//
//   - OpenDirStream opens the listing and nothing else. Failures return a
//     *PathError carrying the native error code and leave nothing open.
//
//   - Next returns entries in native enumeration order, unfiltered. The "."
//     and ".." pseudo-entries are reported like any other name. The returned
//     slice is only valid until the next call. io.EOF marks the end of the
//     listing and is returned on every call after that.
//
//   - Close releases the native handle exactly once and is safe to call more
//     than once. A DirStream that is dropped without Close releases its handle
//     when it is garbage collected.

var _ func(string) (*DirStream, error) = OpenDirStream

type dirStream interface {
	Next() ([]byte, error)
	Close() error
}

var _ dirStream = (*DirStream)(nil)

const (
	opOpenDir  = "opendir"
	opReadDir  = "readdir"
	opCloseDir = "closedir"
)

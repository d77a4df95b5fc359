package upath

import (
	"io"

	"emperror.dev/errors"

	"github.com/priyxstudio/entries/internal/ufs"
)

// EntryIterator is a cursor over the entries of one directory, in the order
// the operating system enumerates them. Nothing is filtered: "." and ".." are
// reported whenever the platform reports them.
//
// The zero value (and End) is the terminal iterator. An iterator bound to a
// directory holds one native listing handle while it has a current entry and
// gives it back as soon as the listing runs out, on Reset, or on Close.
//
// Comparing against the terminal iterator is how a loop detects the end:
//
//	it, err := upath.NewEntryIterator(&dir)
//	if err != nil {
//		return err
//	}
//	defer it.Close()
//	for it.NotEqual(upath.End()) {
//		fmt.Println(it.Entry())
//		if err := it.Next(); err != nil {
//			return err
//		}
//	}
//
// Note that Equal is not structural. See its documentation.
//
// An EntryIterator must not be used from more than one goroutine at a time.
type EntryIterator struct {
	// dir is shared, not owned. Path is immutable so holding the pointer is
	// enough to keep the value alive and unchanged.
	dir    *Path
	stream *ufs.DirStream
	cur    Path
}

// End returns a terminal iterator.
func End() *EntryIterator {
	return &EntryIterator{}
}

// NewEntryIterator opens a listing on dir and positions the iterator on the
// first entry. If the listing can't be opened the returned error is an
// *OSError and nothing is left open.
func NewEntryIterator(dir *Path) (*EntryIterator, error) {
	it := &EntryIterator{}
	if err := it.Reset(dir); err != nil {
		return nil, err
	}
	return it, nil
}

// Reset closes the current listing, if any, and starts a new one on dir from
// its first entry. It is legal in every state, including after exhaustion.
// A nil dir turns the iterator into the terminal iterator.
//
// If the new listing can't be opened the iterator stays bound to dir but is
// exhausted. If only closing the previous listing failed, the iterator is open
// on dir and the returned error says so; it still has to be closed.
func (it *EntryIterator) Reset(dir *Path) error {
	var closeErr error
	if prev := it.dir; prev != nil {
		closeErr = errors.WrapIfWithDetails(it.release(), "upath: failed to close the previous listing", "directory", prev.String())
	}

	it.dir = dir
	if dir == nil {
		return closeErr
	}
	if err := it.open(); err != nil {
		return err
	}
	return closeErr
}

func (it *EntryIterator) open() error {
	stream, err := ufs.OpenDirStream(it.dir.Native())
	if err != nil {
		return err
	}

	name, err := stream.Next()
	if err != nil {
		_ = stream.Close()
		if errors.Is(err, io.EOF) {
			// Nothing to list at all, not even the dot entries.
			return nil
		}
		return err
	}

	it.stream = stream
	it.cur = FromNative(name)
	return nil
}

// Next advances to the following entry. When there is none the listing is
// closed and the iterator becomes equal to End. If the operating system fails
// while reading, the listing is closed as well and the *OSError is returned.
//
// Next panics with ErrIteratorFinished if the iterator has no open listing,
// either because it is the terminal iterator or because it is exhausted.
func (it *EntryIterator) Next() error {
	if it.stream == nil {
		panic(ErrIteratorFinished)
	}

	name, err := it.stream.Next()
	switch {
	case err == nil:
		it.cur = FromNative(name)
		return nil
	case errors.Is(err, io.EOF):
		return it.release()
	default:
		_ = it.release()
		return err
	}
}

// Entry returns the entry the iterator points at. Its value is unspecified
// once the iterator is exhausted.
func (it *EntryIterator) Entry() Path {
	return it.cur
}

// EntryRef returns a pointer to the current entry for callers that want to
// avoid the copy. The pointee must not be modified and is only meaningful
// while the iterator is not exhausted.
func (it *EntryIterator) EntryRef() *Path {
	return &it.cur
}

// Dir returns the directory the iterator is bound to, or nil for the terminal
// iterator.
func (it *EntryIterator) Dir() *Path {
	return it.dir
}

// Bound reports whether the iterator was ever bound to a directory. It stays
// true after the listing is exhausted; use Done to check for the end.
func (it *EntryIterator) Bound() bool {
	return it.dir != nil
}

// Done reports whether the iterator has no current entry. It is shorthand for
// it.Equal(End()).
func (it *EntryIterator) Done() bool {
	return it.stream == nil
}

// Equal compares two iterators.
//
// When other is the terminal iterator (or nil) the comparison does not look at
// directories at all: it reports whether it is exhausted or is itself
// terminal. This makes "it.NotEqual(End())" the loop condition. Otherwise both
// iterators must share the same directory pointer and the same open listing.
// Two iterators opened separately on the same directory are never equal.
func (it *EntryIterator) Equal(other *EntryIterator) bool {
	if other == nil || other.dir == nil {
		return it.stream == nil
	}
	return it.dir == other.dir && it.stream == other.stream
}

// NotEqual is the negation of Equal.
func (it *EntryIterator) NotEqual(other *EntryIterator) bool {
	return !it.Equal(other)
}

// Close releases the native listing if one is open. The iterator stays bound
// but compares equal to End afterwards. Calling Close more than once is safe.
func (it *EntryIterator) Close() error {
	return it.release()
}

func (it *EntryIterator) release() error {
	if it.stream == nil {
		return nil
	}

	stream := it.stream
	it.stream = nil
	it.cur = Path{}
	return stream.Close()
}

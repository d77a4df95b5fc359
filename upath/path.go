// Package upath provides a UTF-8 path value and a cursor over the entries of
// a directory as the operating system reports them.
//
// Paths are always stored as UTF-8 with "/" as the separator, whatever the
// platform. Conversion to and from the operating system's representation
// happens only at the edges, through Path.Native and FromNative.
package upath

import "strings"

// Separator is the separator used inside a Path on every platform.
const Separator = '/'

// Path is an immutable UTF-8 path. The zero value is the empty path.
type Path struct {
	s string
}

// New returns the Path for s. Repeated separators are collapsed and a
// trailing separator is dropped unless the path is a root. On Windows
// backslashes are accepted as separators.
func New(s string) Path {
	return Path{s: sanitize(s)}
}

// FromNative decodes a filename as returned by the operating system.
func FromNative(b []byte) Path {
	return Path{s: decodeFilename(b)}
}

func sanitize(s string) string {
	s = toSlash(s)
	if s == "" {
		return ""
	}

	n := volumePrefixLen(s)
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:n])

	prev := n > 0 && s[n-1] == Separator
	for i := n; i < len(s); i++ {
		c := s[i]
		if c == Separator && prev {
			continue
		}
		prev = c == Separator
		b.WriteByte(c)
	}

	out := b.String()
	if len(out) > 1 && out[len(out)-1] == Separator && !isRoot(out) {
		out = out[:len(out)-1]
	}
	return out
}

// String returns the UTF-8 form of the path.
func (p Path) String() string {
	return p.s
}

// Native returns the path in the form the operating system expects.
func (p Path) Native() string {
	return toNative(p.s)
}

// IsEmpty reports whether p is the empty path.
func (p Path) IsEmpty() bool {
	return p.s == ""
}

// Equal compares the contents of two paths.
func (p Path) Equal(o Path) bool {
	return p.s == o.s
}

// Join appends each element to p, separated by "/".
func (p Path) Join(elem ...string) Path {
	var b strings.Builder
	b.WriteString(p.s)
	for _, e := range elem {
		if e == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(Separator)
		}
		b.WriteString(e)
	}
	return New(b.String())
}

// Base returns the last element of p. The root is its own base.
func (p Path) Base() string {
	if p.s == "" || isRoot(p.s) {
		return p.s
	}
	if i := strings.LastIndexByte(p.s, Separator); i >= 0 {
		return p.s[i+1:]
	}
	return p.s
}

// Dir returns everything but the last element of p. A path without a
// separator yields ".".
func (p Path) Dir() Path {
	if p.s == "" || isRoot(p.s) {
		return p
	}
	i := strings.LastIndexByte(p.s, Separator)
	switch {
	case i < 0:
		return Path{s: "."}
	case i < volumePrefixLen(p.s) || isRoot(p.s[:i+1]):
		return Path{s: p.s[:i+1]}
	default:
		return Path{s: p.s[:i]}
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.s), nil
}

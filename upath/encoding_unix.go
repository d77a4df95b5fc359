//go:build !windows

package upath

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// decodeFilename converts raw filename bytes to UTF-8. Bytes that can't be
// decoded become U+FFFD.
func decodeFilename(b []byte) string {
	enc := currentEncoding()
	if enc == nil {
		if utf8.Valid(b) {
			return string(b)
		}
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}

// encodeFilename converts a UTF-8 path to the filename encoding. Runes the
// encoding can't represent are replaced.
func encodeFilename(s string) string {
	enc := currentEncoding()
	if enc == nil {
		return s
	}

	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).String(s)
	if err != nil {
		return s
	}
	return out
}

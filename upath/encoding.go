package upath

import (
	"sync"

	"emperror.dev/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultFilenameEncoding is the encoding filenames are assumed to use until
// SetFilenameEncoding says otherwise.
const DefaultFilenameEncoding = "utf-8"

var (
	encMu sync.RWMutex
	// nil means UTF-8, which needs no conversion.
	filenameEncoding encoding.Encoding
)

// SetFilenameEncoding selects the encoding used for native filenames on
// platforms where filenames are raw bytes. The name is resolved with the
// WHATWG encoding labels, so "utf-8", "latin1", "windows-1252", "shift_jis"
// and friends are all accepted. On Windows, where filenames are UTF-16, the
// setting is validated but has no effect.
func SetFilenameEncoding(name string) error {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return errors.WithDetails(errors.Wrap(err, "upath: unknown filename encoding"), "encoding", name)
	}
	if canonical, _ := htmlindex.Name(enc); canonical == DefaultFilenameEncoding {
		enc = nil
	}

	encMu.Lock()
	filenameEncoding = enc
	encMu.Unlock()
	return nil
}

// FilenameEncoding returns the canonical name of the current filename
// encoding.
func FilenameEncoding() string {
	enc := currentEncoding()
	if enc == nil {
		return DefaultFilenameEncoding
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return DefaultFilenameEncoding
	}
	return name
}

func currentEncoding() encoding.Encoding {
	encMu.RLock()
	defer encMu.RUnlock()
	return filenameEncoding
}

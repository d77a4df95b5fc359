//go:build windows

package upath

// decodeFilename is a no-op: the Windows backend already converted the
// UTF-16 name to UTF-8.
func decodeFilename(b []byte) string {
	return string(b)
}

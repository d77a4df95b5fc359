//go:build !windows

package upath

func toSlash(s string) string {
	return s
}

func volumePrefixLen(string) int {
	return 0
}

func isRoot(s string) bool {
	return s == "/"
}

func toNative(s string) string {
	return encodeFilename(s)
}

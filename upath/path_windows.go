//go:build windows

package upath

import "strings"

func toSlash(s string) string {
	return strings.ReplaceAll(s, `\`, "/")
}

// volumePrefixLen returns the length of a leading drive letter ("C:") or UNC
// marker ("//"), which sanitize must leave untouched.
func volumePrefixLen(s string) int {
	if len(s) >= 2 && s[0] == Separator && s[1] == Separator {
		return 2
	}
	if len(s) >= 2 && s[1] == ':' {
		return 2
	}
	return 0
}

func isRoot(s string) bool {
	return s == "/" || (len(s) == 3 && s[1] == ':' && s[2] == Separator)
}

func toNative(s string) string {
	return strings.ReplaceAll(s, "/", `\`)
}

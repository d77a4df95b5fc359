//go:build windows

package ufs

// searchSuffix is appended to a directory path to build the FindFirstFileW
// pattern that matches every entry, including "." and "..".
const searchSuffix = `\*`

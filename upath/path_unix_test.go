//go:build !windows

package upath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/priyxstudio/entries/upath"
)

func TestNew_Sanitizes(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"/":           "/",
		"//":          "/",
		"/tmp/x/":     "/tmp/x",
		"/tmp//x///y": "/tmp/x/y",
		"a\\b":        "a\\b",
		"./a":         "./a",
	}

	for in, want := range tests {
		require.Equal(t, want, upath.New(in).String(), "input %q", in)
	}
}

func TestPath_RootDir(t *testing.T) {
	require.Equal(t, "/", upath.New("/").Dir().String())
	require.Equal(t, "/", upath.New("/tmp").Dir().String())
	require.Equal(t, "/", upath.New("/").Base())
	require.Equal(t, "/tmp/x", upath.New("/tmp/x").Native())
}

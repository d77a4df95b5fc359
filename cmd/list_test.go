package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/priyxstudio/entries/upath"
)

// setupCmdTest points the command at a fresh config file and resets the
// flag state touched by the tests.
func setupCmdTest(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	configPath = filepath.Join(t.TempDir(), "config.yml")
	t.Cleanup(func() {
		listArgs.JSON = false
		listArgs.Encoding = ""
	})

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestListDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))

	entries, err := listDirectory(upath.New(dir))
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.String())
	}
	require.ElementsMatch(t, []string{".", "..", "a.txt"}, names)
}

func TestListCmd_Plain(t *testing.T) {
	cmd, buf := setupCmdTest(t)
	require.NoError(t, initConfig())

	first, second := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "b.txt"), nil, 0o644))

	require.NoError(t, listCmdRun(cmd, []string{first, second}))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, upath.New(first).String()+":\n"))
	require.Contains(t, out, "\n\n"+upath.New(second).String()+":\n")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	count := map[string]int{}
	for _, l := range lines {
		count[l]++
	}
	require.Equal(t, 2, count["."])
	require.Equal(t, 2, count[".."])
	require.Equal(t, 1, count["b.txt"])
}

func TestListCmd_JSON(t *testing.T) {
	cmd, buf := setupCmdTest(t)
	listArgs.JSON = true
	require.NoError(t, initConfig())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
	missing := filepath.Join(dir, "missing")

	err := listCmdRun(cmd, []string{dir, missing})
	require.ErrorIs(t, err, errListFailed)

	dec := json.NewDecoder(buf)

	var ok struct {
		Directory string   `json:"directory"`
		Entries   []string `json:"entries"`
		Error     string   `json:"error"`
	}
	require.NoError(t, dec.Decode(&ok))
	require.Equal(t, upath.New(dir).String(), ok.Directory)
	require.ElementsMatch(t, []string{".", "..", "a.txt"}, ok.Entries)
	require.Empty(t, ok.Error)

	var bad struct {
		Directory string   `json:"directory"`
		Entries   []string `json:"entries"`
		Error     string   `json:"error"`
	}
	require.NoError(t, dec.Decode(&bad))
	require.Equal(t, upath.New(missing).String(), bad.Directory)
	require.Empty(t, bad.Entries)
	require.NotEmpty(t, bad.Error)
}

func TestInitConfig_RejectsUnknownEncoding(t *testing.T) {
	_, _ = setupCmdTest(t)
	listArgs.Encoding = "klingon"
	require.Error(t, initConfig())
}

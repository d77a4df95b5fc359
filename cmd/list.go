package cmd

import (
	"fmt"
	"io"

	"emperror.dev/errors"
	"github.com/apex/log"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/priyxstudio/entries/config"
	"github.com/priyxstudio/entries/upath"
)

var listArgs struct {
	JSON     bool
	Encoding string
	Jobs     int
}

var errListFailed = errors.New("one or more directories could not be listed")

// listing is the JSON document written for each directory.
type listing struct {
	Directory upath.Path   `json:"directory"`
	Entries   []upath.Path `json:"entries"`
	Error     string       `json:"error,omitempty"`
}

// listCmdRun lists every directory given on the command line, or the current
// directory when there are none. Directories are read concurrently but printed
// in the order they were given. A directory that can't be opened is reported
// and skipped; the command still fails at the end.
func listCmdRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	results := make([]listing, len(args))
	errs := make([]error, len(args))

	g := new(errgroup.Group)
	if listArgs.Jobs > 0 {
		g.SetLimit(listArgs.Jobs)
	}
	for i, arg := range args {
		g.Go(func() error {
			dir := upath.New(arg)
			log.WithField("path", dir.String()).Debug("listing directory")

			entries, err := listDirectory(dir)
			results[i] = listing{Directory: dir, Entries: entries}
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	out := cmd.OutOrStdout()
	format := config.Get().Output.Format

	failed := false
	for i, res := range results {
		if err := errs[i]; err != nil {
			failed = true
			res.Error = err.Error()
			log.WithField("path", res.Directory.String()).WithField("error", err).Error("failed to list directory")
		}

		switch format {
		case config.OutputJSON:
			if err := json.NewEncoder(out).Encode(res); err != nil {
				return errors.Wrap(err, "failed to write listing")
			}
		default:
			if err := writePlain(out, res.Directory, res.Entries, len(args) > 1, i > 0); err != nil {
				return errors.Wrap(err, "failed to write listing")
			}
		}
	}

	if failed {
		return errListFailed
	}
	return nil
}

// listDirectory walks dir with an EntryIterator. Entries read before a failure
// are returned along with the error.
func listDirectory(dir upath.Path) ([]upath.Path, error) {
	it, err := upath.NewEntryIterator(&dir)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var entries []upath.Path
	for it.NotEqual(upath.End()) {
		entries = append(entries, it.Entry())
		if err := it.Next(); err != nil {
			return entries, err
		}
	}
	return entries, nil
}

func writePlain(w io.Writer, dir upath.Path, entries []upath.Path, header, spacer bool) error {
	if spacer {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if header {
		if _, err := fmt.Fprintf(w, "%s:\n", dir); err != nil {
			return err
		}
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}

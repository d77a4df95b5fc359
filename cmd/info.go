package cmd

import (
	"fmt"
	"io"

	"emperror.dev/errors"
	"github.com/apex/log"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/priyxstudio/entries/config"
	"github.com/priyxstudio/entries/system"
	"github.com/priyxstudio/entries/upath"
)

var infoArgs struct {
	JSON bool
}

// infoReport is what "entries info" prints.
type infoReport struct {
	*system.Information
	Directory  upath.Path         `json:"directory"`
	Filesystem *system.Filesystem `json:"filesystem,omitempty"`
}

func newInfoCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "info [directory]",
		Short: "Show how directory listings are produced on this host.",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: infoCmdRun,
	}
	command.Flags().BoolVar(&infoArgs.JSON, "json", false, "print the report as a JSON document")

	return command
}

func infoCmdRun(cmd *cobra.Command, args []string) error {
	dir := upath.New(".")
	if len(args) > 0 {
		dir = upath.New(args[0])
	}

	info, err := system.GetSystemInformation()
	if err != nil {
		return errors.WrapIf(err, "failed to collect system information")
	}

	report := infoReport{Information: info, Directory: dir}
	if fs, err := system.FilesystemFor(dir.Native()); err != nil {
		log.WithField("path", dir.String()).WithField("error", err).Warn("failed to determine filesystem")
	} else if fs.Type != "" {
		report.Filesystem = &fs
	}

	if infoArgs.JSON || config.Get().Output.Format == config.OutputJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(report)
	}
	return writeInfo(cmd.OutOrStdout(), report)
}

func writeInfo(w io.Writer, r infoReport) error {
	rows := [][2]string{
		{"Version", r.Version},
		{"OS", r.System.OS},
		{"OS Type", r.System.OSType},
		{"Architecture", r.System.Architecture},
		{"Kernel", r.System.KernelVersion},
		{"Listing Backend", r.Listing.Backend},
		{"Filename Encoding", r.Listing.FilenameEncoding},
		{"Directory", r.Directory.String()},
	}
	if r.Filesystem != nil {
		rows = append(rows,
			[2]string{"Filesystem", r.Filesystem.Type},
			[2]string{"Device", r.Filesystem.Device},
			[2]string{"Mountpoint", r.Filesystem.Mountpoint},
		)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-18s %s\n", row[0]+":", row[1]); err != nil {
			return err
		}
	}
	return nil
}

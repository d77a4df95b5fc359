package cmd

import (
	"os"
	"runtime"

	"emperror.dev/errors"
	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/priyxstudio/entries/config"
	"github.com/priyxstudio/entries/loggers/cli"
	"github.com/priyxstudio/entries/system"
)

var (
	configPath = config.DefaultLocation
	debug      = false
)

var rootCommand = &cobra.Command{
	Use:   "entries [directory...]",
	Short: "List directory entries exactly as the operating system enumerates them.",
	Long: "List directory entries exactly as the operating system enumerates them: " +
		"in native order, unsorted, and including the \".\" and \"..\" pseudo-entries.",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: listCmdRun,
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCommand.PersistentFlags().StringVar(&configPath, "config", config.DefaultLocation, "set the location for the configuration file")
	rootCommand.PersistentFlags().BoolVar(&debug, "debug", false, "pass in order to run in debug mode")

	rootCommand.Flags().BoolVar(&listArgs.JSON, "json", false, "print each listing as a JSON document")
	rootCommand.Flags().StringVar(&listArgs.Encoding, "encoding", "", "filename encoding to decode native names with (overrides the configuration)")
	rootCommand.Flags().IntVar(&listArgs.Jobs, "jobs", runtime.NumCPU(), "number of directories to read at the same time")

	rootCommand.Version = system.Version
	rootCommand.AddCommand(newConfigCommand(), newInfoCommand())
}

// initConfig loads the configuration file, applies command line overrides and
// configures logging. A missing configuration file is not an error.
func initConfig() error {
	if err := config.FromFile(configPath); err != nil {
		return errors.WrapIf(err, "failed to load configuration")
	}
	if debug {
		config.SetDebugViaFlag(debug)
	}
	if listArgs.Encoding != "" {
		config.Update(func(c *config.Configuration) {
			c.Filesystem.FilenameEncoding = listArgs.Encoding
		})
	}
	if listArgs.JSON {
		config.Update(func(c *config.Configuration) {
			c.Output.Format = config.OutputJSON
		})
	}

	c := config.Get()
	initLogging(c)
	return c.Apply()
}

// initLogging configures the global logger.
func initLogging(c *config.Configuration) {
	log.SetHandler(cli.New(os.Stderr, c.Output.Color))
	log.SetLevel(log.InfoLevel)
	if c.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.WithField("path", c.Path()).Debug("configuration loaded")
}

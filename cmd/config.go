package cmd

import (
	"fmt"
	"os"

	"emperror.dev/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/priyxstudio/entries/config"
)

var configInitArgs struct {
	Force bool
}

func newConfigCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change the configuration file.",
	}

	initCommand := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file containing the default values.",
		Args:  cobra.NoArgs,
		RunE:  configInitCmdRun,
	}
	initCommand.Flags().BoolVar(&configInitArgs.Force, "force", false, "overwrite an existing configuration file")

	command.AddCommand(
		initCommand,
		&cobra.Command{
			Use:     "set <key> <value>",
			Short:   "Change one value, keeping the rest of the file and its comments intact.",
			Example: "  entries config set filesystem.filename_encoding latin1",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return config.SetValue(configPath, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration.",
			Args:  cobra.NoArgs,
			PreRunE: func(cmd *cobra.Command, args []string) error {
				return initConfig()
			},
			RunE: configShowCmdRun,
		},
	)

	return command
}

func configInitCmdRun(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(configPath); err == nil && !configInitArgs.Force {
		return errors.Errorf("configuration file %s already exists, pass --force to overwrite it", configPath)
	}

	c, err := config.NewAtPath(configPath)
	if err != nil {
		return err
	}
	if err := config.WriteToDisk(c); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote default configuration to %s\n", configPath)
	return nil
}

func configShowCmdRun(cmd *cobra.Command, _ []string) error {
	b, err := yaml.Marshal(config.Get())
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

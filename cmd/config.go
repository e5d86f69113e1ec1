package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/thiagokokada/git-graph-go/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// The config file may be broken; do not load it here.
		PersistentPreRunE: func(*cobra.Command, []string) error {
			path = a.opts.configPath
			if path != "" {
				return nil
			}
			p, err := config.DefaultPath()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			path = p
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(pathCmd, initCmd)
	return cmd
}

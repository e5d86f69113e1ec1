package cmd

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thiagokokada/git-graph-go/internal/buildinfo"
	"github.com/thiagokokada/git-graph-go/internal/git"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gitVersion, checkErr := a.svc.Version(cmd.Context())
			if checkErr != nil {
				slog.Debug("git version check", slog.Any("error", checkErr))
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.Summary(gitVersion)); err != nil {
				return err
			}
			if checkErr != nil {
				warn := color.New(color.FgYellow)
				if a.colored {
					warn.EnableColor()
				} else {
					warn.DisableColor()
				}
				warn.Fprintf(cmd.ErrOrStderr(), "warning: %v (minimum supported git is %s)\n", checkErr, git.MinGitVersion())
			}
			return nil
		},
	}
}

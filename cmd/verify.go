package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thiagokokada/git-graph-go/internal/rpc"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <root>...",
		Short: "Check which repository roots still exist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := a.svc.VerifyRepos(cmd.Context(), args)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), statuses, func(w io.Writer) error {
				return a.printer.WriteRepoStatus(w, statuses)
			})
		},
	}
}

func newRPCCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rpc",
		Short: "Serve queries as JSON lines on stdin and stdout",
		Long: `Read one JSON request per line from stdin and write one JSON response per
line to stdout until stdin is closed. Each request carries an id, a command
and its params; responses echo the id with a result or an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rpc.Serve(cmd.Context(), a.svc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

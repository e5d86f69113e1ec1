package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	gitbackend "github.com/thiagokokada/git-graph-go/internal/git/backend"
)

func newBranchesCmd(a *app) *cobra.Command {
	var remotes bool
	cmd := &cobra.Command{
		Use:     "branches",
		Aliases: []string{"branch"},
		Short:   "List branches",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			repo, err := a.repoRoot(ctx)
			if err != nil {
				return err
			}
			showRemote := a.cfg.ShowRemoteBranches
			if cmd.Flags().Changed("remotes") {
				showRemote = remotes
			}
			list, err := a.svc.Branches(ctx, repo, showRemote)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), list, func(w io.Writer) error {
				return a.printer.WriteBranches(w, list)
			})
		},
	}
	cmd.Flags().BoolVarP(&remotes, "remotes", "r", false, "include remote-tracking branches (default from config)")
	return cmd
}

func newCheckoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <branch>",
		Short: "Switch to a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, err := a.repoRoot(ctx)
			if err != nil {
				return err
			}
			if err := a.svc.CheckoutBranch(ctx, repo, args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Switched to branch '%s'\n", args[0])
			return err
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "reset <hash>",
		Short: "Reset the current branch to a commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, err := a.repoRoot(ctx)
			if err != nil {
				return err
			}
			if err := a.svc.ResetToCommit(ctx, repo, args[0], gitbackend.ResetMode(mode)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Reset (%s) to %s\n", mode, args[0])
			return err
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(gitbackend.ResetMixed), "reset mode: soft, mixed or hard")
	return cmd
}

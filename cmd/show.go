package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thiagokokada/git-graph-go/internal/present"
)

type fileContent struct {
	Hash    string `json:"commitHash" yaml:"commitHash"`
	Path    string `json:"filePath" yaml:"filePath"`
	Content string `json:"content" yaml:"content"`
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <hash> <path>",
		Short: "Print a file as of a commit",
		Long:  `Print a file as of a commit, or from the working tree when hash is "*".`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, err := a.repoRoot(ctx)
			if err != nil {
				return err
			}
			hash, path := args[0], args[1]
			content, err := a.svc.FileContent(ctx, repo, hash, path)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), fileContent{Hash: hash, Path: path, Content: content}, func(w io.Writer) error {
				if !a.colored {
					_, err := io.WriteString(w, content)
					return err
				}
				return present.Highlight(w, path, content, a.dark())
			})
		},
	}
}

func newDetailsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "details <hash>",
		Short: "Show a commit with the files it changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, err := a.repoRoot(ctx)
			if err != nil {
				return err
			}
			details, err := a.svc.CommitDetails(ctx, repo, args[0])
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), details, func(w io.Writer) error {
				return a.printer.WriteDetails(w, details)
			})
		},
	}
}

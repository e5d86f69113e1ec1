package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thiagokokada/git-graph-go/internal/git"
	"github.com/thiagokokada/git-graph-go/internal/present"
)

type fileDiff struct {
	Change git.FileChange `json:"change" yaml:"change"`
	Diff   string         `json:"diff" yaml:"diff"`
}

func newDiffCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "diff <from> [to]",
		Short: "List the files changed between two commits",
		Long: `List the files changed between two commits. When to is omitted, or either
side is "*", the working tree takes that side. With --file the unified
diff of that one file is printed instead.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := args[0], git.UncommittedHash
			if len(args) == 2 {
				to = args[1]
			}
			return a.runDiff(cmd, from, to, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "print the unified diff of this path")
	return cmd
}

func (a *app) runDiff(cmd *cobra.Command, from, to, file string) error {
	ctx := cmd.Context()
	repo, err := a.repoRoot(ctx)
	if err != nil {
		return err
	}
	changes, err := a.svc.Compare(ctx, repo, from, to)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if file == "" {
		return a.emit(out, changes, func(w io.Writer) error {
			return a.printer.WriteChanges(w, changes)
		})
	}

	change, ok := findChange(changes, file)
	if !ok {
		return fmt.Errorf("%s is unchanged between %s and %s", file, from, to)
	}
	oldPath, newPath, oldContent, newContent, err := a.readSides(ctx, repo, from, to, change)
	if err != nil {
		return err
	}
	text, err := present.UnifiedFileDiff(oldPath, newPath, oldContent, newContent)
	if err != nil {
		return err
	}
	return a.emit(out, fileDiff{Change: change, Diff: text}, func(w io.Writer) error {
		return a.printer.WriteDiff(w, text)
	})
}

// readSides loads both versions of one changed file. A side the change does
// not exist on is returned with an empty path. Untracked files are listed as
// added even when the working tree is the from side, so they are read from
// there.
func (a *app) readSides(ctx context.Context, repo, from, to string, change git.FileChange) (oldPath, newPath, oldContent, newContent string, err error) {
	if change.Type == git.ChangeAdded && git.IsWorkingTree(from) && !git.IsWorkingTree(to) {
		if content, err := a.svc.FileContent(ctx, repo, from, change.NewFilePath); err == nil {
			return change.NewFilePath, "", content, "", nil
		}
	}
	oldPath, newPath = change.OldFilePath, change.NewFilePath
	if change.Type == git.ChangeAdded {
		oldPath = ""
	} else if oldContent, err = a.svc.FileContent(ctx, repo, from, change.OldFilePath); err != nil {
		return "", "", "", "", err
	}
	if change.Type == git.ChangeDeleted {
		newPath = ""
	} else if newContent, err = a.svc.FileContent(ctx, repo, to, change.NewFilePath); err != nil {
		return "", "", "", "", err
	}
	return oldPath, newPath, oldContent, newContent, nil
}

func findChange(changes []git.FileChange, path string) (git.FileChange, bool) {
	for _, c := range changes {
		if c.NewFilePath == path || c.OldFilePath == path {
			return c, true
		}
	}
	return git.FileChange{}, false
}

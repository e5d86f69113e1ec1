package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thiagokokada/git-graph-go/internal/git"
	"github.com/thiagokokada/git-graph-go/internal/present"
	"github.com/thiagokokada/git-graph-go/internal/watch"
)

type logOptions struct {
	branch  string
	limit   int
	remotes bool
	watch   bool
}

func newLogCmd(a *app) *cobra.Command {
	var opts logOptions
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the commit graph",
		Long: `Show the commit graph with refs, stashes and, when the working tree is
dirty, an "Uncommitted Changes" entry on top of HEAD.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runLog(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.branch, "branch", "b", "", "only show history reachable from this ref")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "maximum number of commits (default from config)")
	cmd.Flags().BoolVar(&opts.remotes, "remotes", false, "include remote-tracking branches (default from config)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reprint the graph whenever the repository changes")
	return cmd
}

func (a *app) runLog(cmd *cobra.Command, opts logOptions) error {
	ctx := cmd.Context()
	repo, err := a.repoRoot(ctx)
	if err != nil {
		return err
	}
	load := git.LoadOptions{
		Branch:             opts.branch,
		MaxCommits:         opts.limit,
		ShowRemoteBranches: a.cfg.ShowRemoteBranches,
	}
	if cmd.Flags().Changed("remotes") {
		load.ShowRemoteBranches = opts.remotes
	}
	out := cmd.OutOrStdout()
	if err := a.printLog(ctx, out, repo, load); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	err = a.watchLog(ctx, out, repo, load)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *app) printLog(ctx context.Context, w io.Writer, repo string, load git.LoadOptions) error {
	graph, err := a.svc.LoadCommits(ctx, repo, load)
	if err != nil {
		return err
	}
	for _, d := range graph.Diagnostics {
		slog.Warn("partial result", slog.String("diagnostic", d))
	}
	return a.emit(w, graph, func(w io.Writer) error {
		return a.printer.WriteLog(w, graph)
	})
}

func (a *app) watchLog(ctx context.Context, w io.Writer, repo string, load git.LoadOptions) error {
	reload := make(chan struct{}, 1)
	watcher, err := watch.New(repo, watch.DefaultDelay, func() {
		select {
		case reload <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Run(gctx)
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-reload:
				if a.format == present.FormatText {
					fmt.Fprintf(w, "\n-- reloaded %s --\n", time.Now().Format(time.TimeOnly))
				}
				if err := a.printLog(gctx, w, repo, load); err != nil {
					return err
				}
			}
		}
	})
	return g.Wait()
}

package git

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	gitbackend "github.com/thiagokokada/git-graph-go/internal/git/backend"
)

// GraphInput is everything Assemble merges. Uncommitted is the number of
// changed files in the working tree; zero adds no working tree node.
type GraphInput struct {
	Commits     []gitbackend.RawCommit
	Refs        gitbackend.RefData
	Stashes     []gitbackend.StashRecord
	Uncommitted int
	Now         int64
}

// Assemble builds the node sequence shown in the graph and a hash to index
// lookup over it. Commit order is kept as listed. Refs and stashes that point
// outside the listed commits are dropped.
//
// A stash whose own hash is listed is attached to that node; when several
// attach to the same node the one listed last wins. Any other stash whose base
// commit is listed becomes its own node right before the base, newest first.
func Assemble(in GraphInput) ([]CommitNode, map[string]int) {
	nodes := make([]CommitNode, 0, len(in.Commits)+len(in.Stashes)+1)
	for _, c := range in.Commits {
		nodes = append(nodes, CommitNode{
			Hash:    c.Hash,
			Parents: nonNil(c.ParentHashes),
			Author:  c.Author,
			Email:   c.Email,
			Date:    c.Date,
			Message: c.Subject,
			Refs:    []RefLabel{},
		})
	}
	lookup := indexNodes(nodes)

	if in.Uncommitted > 0 && in.Refs.Head != "" {
		if _, ok := lookup[in.Refs.Head]; ok {
			nodes = slices.Insert(nodes, 0, CommitNode{
				Hash:    UncommittedHash,
				Parents: []string{in.Refs.Head},
				Author:  "*",
				Date:    in.Now,
				Message: fmt.Sprintf("Uncommitted Changes (%d)", in.Uncommitted),
				Refs:    []RefLabel{},
			})
			lookup = indexNodes(nodes)
		}
	}

	for _, ref := range in.Refs.Refs {
		i, ok := lookup[ref.Hash]
		if !ok {
			continue
		}
		nodes[i].Refs = append(nodes[i].Refs, RefLabel{
			Name:      ref.Name,
			Kind:      ref.Kind.String(),
			Annotated: ref.Annotated,
		})
	}

	type insertion struct {
		at    int
		stash gitbackend.StashRecord
	}
	var inserts []insertion
	for _, stash := range in.Stashes {
		if IsWorkingTree(stash.Hash) || IsWorkingTree(stash.BaseHash) {
			continue
		}
		if i, ok := lookup[stash.Hash]; ok {
			nodes[i].Stash = stashInfo(stash)
			continue
		}
		if i, ok := lookup[stash.BaseHash]; ok {
			inserts = append(inserts, insertion{at: i, stash: stash})
		}
	}
	// Splicing from the back keeps the remaining indices valid. For a shared
	// base the oldest stash goes in first, so the newest ends up on top.
	slices.SortStableFunc(inserts, func(a, b insertion) int {
		if c := cmp.Compare(a.at, b.at); c != 0 {
			return c
		}
		return cmp.Compare(b.stash.Date, a.stash.Date)
	})
	for _, ins := range slices.Backward(inserts) {
		nodes = slices.Insert(nodes, ins.at, CommitNode{
			Hash:    ins.stash.Hash,
			Parents: []string{ins.stash.BaseHash},
			Author:  ins.stash.Author,
			Email:   ins.stash.Email,
			Date:    ins.stash.Date,
			Message: ins.stash.Message,
			Refs:    []RefLabel{},
			Stash:   stashInfo(ins.stash),
		})
	}
	if len(inserts) > 0 {
		lookup = indexNodes(nodes)
	}
	return nodes, lookup
}

// indexNodes maps each hash to its first position.
func indexNodes(nodes []CommitNode) map[string]int {
	lookup := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if _, ok := lookup[n.Hash]; !ok {
			lookup[n.Hash] = i
		}
	}
	return lookup
}

func stashInfo(s gitbackend.StashRecord) *StashInfo {
	return &StashInfo{
		Selector:           s.Selector,
		BaseHash:           s.BaseHash,
		UntrackedFilesHash: s.UntrackedFilesHash,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// LoadCommits queries history, refs, stashes and working tree status
// concurrently and assembles them. A query that fails is treated as empty and
// its diagnostic is reported in CommitGraph.Diagnostics; only invalid input
// and cancellation are returned as errors.
func (s *Service) LoadCommits(ctx context.Context, repo string, opts LoadOptions) (CommitGraph, error) {
	st := s.settings.Load()
	if opts.Branch != "" {
		if err := gitbackend.ValidateRefName(opts.Branch); err != nil {
			return CommitGraph{}, err
		}
	}
	maxCommits := opts.MaxCommits
	if maxCommits <= 0 {
		maxCommits = st.cfg.MaxCommits
	}
	slog.Debug("LoadCommits start",
		slog.String("repo", repo),
		slog.String("branch", opts.Branch),
		slog.Int("max_commits", maxCommits),
		slog.Bool("remotes", opts.ShowRemoteBranches),
	)

	var (
		commits []gitbackend.RawCommit
		refs    = gitbackend.RefData{Refs: []gitbackend.Ref{}}
		stashes []gitbackend.StashRecord
		changes gitbackend.LocalChanges
		diags   [4]string
	)
	var g errgroup.Group
	g.Go(func() error {
		res := gitbackend.Run(ctx, st.exec, repo, st.formats.LogArgs(opts.Branch, maxCommits, opts.ShowRemoteBranches), gitbackend.ParseLog)
		commits, diags[0] = res.ValueOr(nil), res.Diagnostic
		return nil
	})
	g.Go(func() error {
		res := gitbackend.Run(ctx, st.exec, repo, gitbackend.RefArgs(opts.ShowRemoteBranches), gitbackend.ParseRefs)
		refs, diags[1] = res.ValueOr(refs), res.Diagnostic
		return nil
	})
	g.Go(func() error {
		res := gitbackend.Run(ctx, st.exec, repo, st.formats.StashArgs(), gitbackend.ParseStashes)
		stashes = res.ValueOr(nil)
		// A repository without stashes has no refs/stash and reflog exits non-zero.
		if !res.OK() && hasStashRef(ctx, st.exec, repo) {
			diags[2] = res.Diagnostic
		}
		return nil
	})
	if st.cfg.ShowUncommittedChanges {
		g.Go(func() error {
			res := gitbackend.Run(ctx, st.exec, repo, gitbackend.StatusArgs(st.cfg.ShowUntrackedFiles), gitbackend.ParseStatus)
			changes, diags[3] = res.ValueOr(changes), res.Diagnostic
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return CommitGraph{}, err
	}

	moreAvailable := len(commits) > maxCommits
	if moreAvailable {
		commits = commits[:maxCommits]
	}
	nodes, _ := Assemble(GraphInput{
		Commits:     commits,
		Refs:        refs,
		Stashes:     stashes,
		Uncommitted: changes.Count(),
		Now:         s.now().Unix(),
	})

	graph := CommitGraph{Nodes: nodes, Head: refs.Head, MoreAvailable: moreAvailable}
	for i, d := range diags {
		if d == "" {
			continue
		}
		slog.Warn("LoadCommits query failed", slog.Int("query", i), slog.String("diagnostic", d))
		graph.Diagnostics = append(graph.Diagnostics, d)
	}
	slog.Debug("LoadCommits done",
		slog.Int("nodes", len(graph.Nodes)),
		slog.Bool("more", graph.MoreAvailable),
		slog.Int("diagnostics", len(graph.Diagnostics)),
	)
	return graph, nil
}

func hasStashRef(ctx context.Context, ex gitbackend.Executor, repo string) bool {
	res := gitbackend.RunText(ctx, ex, repo, []string{"rev-parse", "--verify", "--quiet", "refs/stash"})
	return res.OK()
}

package git

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	gitbackend "github.com/thiagokokada/git-graph-go/internal/git/backend"
)

// Compare lists the files that differ between from and to. Either side may be
// UncommittedHash or empty to mean the working tree; untracked files are then
// reported as added. Any failed query fails the whole comparison.
func (s *Service) Compare(ctx context.Context, repo, from, to string) ([]FileChange, error) {
	for _, hash := range []string{from, to} {
		if IsWorkingTree(hash) {
			continue
		}
		if err := gitbackend.ValidateHash(hash); err != nil {
			return nil, err
		}
	}
	fromTree, toTree := IsWorkingTree(from), IsWorkingTree(to)
	if (fromTree && toTree) || from == to {
		return []FileChange{}, nil
	}

	var q changeQuery
	switch {
	case toTree:
		q = changeQuery{
			nameStatus: gitbackend.NameStatusArgs(from, "", false),
			numStat:    gitbackend.NumStatArgs(from, "", false),
			untracked:  true,
		}
	case fromTree:
		q = changeQuery{
			nameStatus: gitbackend.NameStatusArgs(to, "", true),
			numStat:    gitbackend.NumStatArgs(to, "", true),
			untracked:  true,
		}
	default:
		q = changeQuery{
			nameStatus: gitbackend.NameStatusArgs(from, to, false),
			numStat:    gitbackend.NumStatArgs(from, to, false),
		}
	}
	slog.Debug("Compare", slog.String("repo", repo), slog.String("from", from), slog.String("to", to))
	return s.fileChanges(ctx, s.settings.Load(), repo, q)
}

type changeQuery struct {
	nameStatus []string
	numStat    []string
	untracked  bool
}

func (s *Service) fileChanges(ctx context.Context, st *settings, repo string, q changeQuery) ([]FileChange, error) {
	var (
		nameStatus []gitbackend.NameStatus
		numStat    []gitbackend.NumStat
		untracked  []string
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res := gitbackend.Run(ctx, st.exec, repo, q.nameStatus, gitbackend.ParseNameStatus)
		nameStatus = res.Value
		return res.Err()
	})
	g.Go(func() error {
		res := gitbackend.Run(ctx, st.exec, repo, q.numStat, gitbackend.ParseNumStat)
		numStat = res.Value
		return res.Err()
	})
	if q.untracked {
		g.Go(func() error {
			res := gitbackend.Run(ctx, st.exec, repo, gitbackend.UntrackedArgs(), gitbackend.ParseUntracked)
			untracked = res.Value
			return res.Err()
		})
	}
	if err := g.Wait(); err != nil {
		slog.Debug("file changes failed", slog.String("repo", repo), slog.Any("error", err))
		return nil, err
	}
	return mergeFileChanges(nameStatus, numStat, untracked), nil
}

// mergeFileChanges keeps name-status order, fills line counts by new path and
// appends untracked paths that the tracked diff did not already report.
func mergeFileChanges(nameStatus []gitbackend.NameStatus, numStat []gitbackend.NumStat, untracked []string) []FileChange {
	changes := make([]FileChange, 0, len(nameStatus)+len(untracked))
	byPath := make(map[string]int, len(nameStatus))
	for _, ns := range nameStatus {
		byPath[ns.NewPath] = len(changes)
		changes = append(changes, FileChange{
			OldFilePath: ns.OldPath,
			NewFilePath: ns.NewPath,
			Type:        ns.Kind,
		})
	}
	for _, stat := range numStat {
		i, ok := byPath[stat.Path]
		if !ok || stat.Binary {
			continue
		}
		additions, deletions := stat.Additions, stat.Deletions
		changes[i].Additions = &additions
		changes[i].Deletions = &deletions
	}
	for _, p := range untracked {
		if _, ok := byPath[p]; ok {
			continue
		}
		byPath[p] = len(changes)
		changes = append(changes, FileChange{OldFilePath: p, NewFilePath: p, Type: ChangeAdded})
	}
	return changes
}

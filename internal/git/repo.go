package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	gitlib "github.com/go-git/go-git/v5"

	gitbackend "github.com/thiagokokada/git-graph-go/internal/git/backend"
	"github.com/thiagokokada/git-graph-go/internal/pool"
)

// verifyWorkers bounds how many repositories are opened at once.
const verifyWorkers = 3

// RepoRoot resolves the top-level directory of the repository containing
// path. When git cannot answer, the .git directory is located directly.
func (s *Service) RepoRoot(ctx context.Context, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	st := s.settings.Load()
	res := gitbackend.Run(ctx, st.exec, abs, []string{"rev-parse", "--show-toplevel"}, strings.TrimSpace)
	if res.OK() && res.Value != "" {
		return filepath.Clean(res.Value), nil
	}
	slog.Debug("rev-parse failed, falling back to .git detection",
		slog.String("path", abs),
		slog.String("diagnostic", res.Diagnostic),
	)
	repo, err := gitlib.PlainOpenWithOptions(abs, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// VerifyRepos reports, in input order, which roots still hold a repository.
func (s *Service) VerifyRepos(ctx context.Context, roots []string) ([]RepoStatus, error) {
	return pool.Map(ctx, roots, verifyWorkers, func(_ context.Context, root string) (RepoStatus, error) {
		status := RepoStatus{Path: root}
		_, err := gitlib.PlainOpen(root)
		switch {
		case err == nil:
			status.Exists = true
		case errors.Is(err, gitlib.ErrRepositoryNotExists):
		default:
			status.Error = err.Error()
		}
		return status, nil
	})
}

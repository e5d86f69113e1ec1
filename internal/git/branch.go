package git

import (
	"context"
	"log/slog"

	gitbackend "github.com/thiagokokada/git-graph-go/internal/git/backend"
)

// Branches lists local branches, plus remote-tracking ones when showRemote is
// set. Head is empty when HEAD is detached.
func (s *Service) Branches(ctx context.Context, repo string, showRemote bool) (BranchList, error) {
	st := s.settings.Load()
	res := gitbackend.Run(ctx, st.exec, repo, gitbackend.BranchArgs(showRemote), gitbackend.ParseBranches)
	if err := res.Err(); err != nil {
		return BranchList{}, err
	}
	return BranchList{Branches: res.Value.Branches, Head: res.Value.Head}, nil
}

func (s *Service) CheckoutBranch(ctx context.Context, repo, branch string) error {
	if err := gitbackend.ValidateRefName(branch); err != nil {
		return err
	}
	slog.Debug("CheckoutBranch", slog.String("repo", repo), slog.String("branch", branch))
	st := s.settings.Load()
	return gitbackend.RunText(ctx, st.exec, repo, []string{"switch", branch}).Err()
}

func (s *Service) ResetToCommit(ctx context.Context, repo, hash string, mode gitbackend.ResetMode) error {
	if err := gitbackend.ValidateHash(hash); err != nil {
		return err
	}
	if err := gitbackend.ValidateResetMode(mode); err != nil {
		return err
	}
	slog.Debug("ResetToCommit", slog.String("repo", repo), slog.String("hash", hash), slog.String("mode", string(mode)))
	st := s.settings.Load()
	return gitbackend.RunText(ctx, st.exec, repo, []string{"reset", "--" + string(mode), hash}).Err()
}

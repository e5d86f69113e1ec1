package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gitbackend "github.com/thiagokokada/git-graph-go/internal/git/backend"
)

var ErrMalformedOutput = errors.New("unexpected git output")

// CommitDetails returns the full message of hash and the files it changed
// relative to its first parent.
func (s *Service) CommitDetails(ctx context.Context, repo, hash string) (*CommitDetails, error) {
	if err := gitbackend.ValidateHash(hash); err != nil {
		return nil, err
	}
	st := s.settings.Load()
	res := gitbackend.Run(ctx, st.exec, repo, st.formats.DetailsArgs(hash), gitbackend.ParseCommitDetails)
	if err := res.Err(); err != nil {
		return nil, err
	}
	if res.Value == nil {
		return nil, fmt.Errorf("commit details for %s: %w", hash, ErrMalformedOutput)
	}
	commit := res.Value

	parent := ""
	if len(commit.ParentHashes) > 0 {
		parent = commit.ParentHashes[0]
	}
	changes, err := s.fileChanges(ctx, st, repo, changeQuery{
		nameStatus: gitbackend.CommitNameStatusArgs(commit.Hash, parent),
		numStat:    gitbackend.CommitNumStatArgs(commit.Hash, parent),
	})
	if err != nil {
		return nil, err
	}
	return &CommitDetails{
		Hash:         commit.Hash,
		ParentHashes: nonNil(commit.ParentHashes),
		Author:       commit.Author,
		Email:        commit.Email,
		Date:         commit.Date,
		Committer:    commit.Committer,
		Body:         commit.Body,
		FileChanges:  changes,
	}, nil
}

// FileContent returns path as stored in hash, or as it is on disk when hash
// names the working tree (UncommittedHash or empty).
func (s *Service) FileContent(ctx context.Context, repo, hash, path string) (string, error) {
	if err := gitbackend.ValidatePath(path); err != nil {
		return "", err
	}
	if IsWorkingTree(hash) {
		data, err := os.ReadFile(filepath.Join(repo, filepath.FromSlash(path)))
		if err != nil {
			return "", fmt.Errorf("read working tree file: %w", err)
		}
		return string(data), nil
	}
	if err := gitbackend.ValidateHash(hash); err != nil {
		return "", err
	}
	st := s.settings.Load()
	res := gitbackend.RunText(ctx, st.exec, repo, []string{"show", hash + ":" + path})
	if err := res.Err(); err != nil {
		return "", err
	}
	return res.Value, nil
}

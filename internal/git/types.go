package git

import (
	gitbackend "github.com/thiagokokada/git-graph-go/internal/git/backend"
)

// UncommittedHash stands in for the working tree wherever a commit hash is
// expected. An empty string means the same thing in comparisons.
const UncommittedHash = "*"

// IsWorkingTree reports whether hash names the working tree.
func IsWorkingTree(hash string) bool {
	return hash == "" || hash == UncommittedHash
}

type RefLabel struct {
	Name      string `json:"name" yaml:"name"`
	Kind      string `json:"kind" yaml:"kind"` // head, tag or remote
	Annotated bool   `json:"annotated,omitempty" yaml:"annotated,omitempty"`
}

// StashInfo is set on nodes that are, or stand in for, a stash entry.
type StashInfo struct {
	Selector           string `json:"selector" yaml:"selector"`
	BaseHash           string `json:"baseHash" yaml:"baseHash"`
	UntrackedFilesHash string `json:"untrackedFilesHash,omitempty" yaml:"untrackedFilesHash,omitempty"`
}

type CommitNode struct {
	Hash    string     `json:"hash" yaml:"hash"`
	Parents []string   `json:"parents" yaml:"parents"`
	Author  string     `json:"author" yaml:"author"`
	Email   string     `json:"email" yaml:"email"`
	Date    int64      `json:"date" yaml:"date"`
	Message string     `json:"message" yaml:"message"`
	Refs    []RefLabel `json:"refs" yaml:"refs"`
	Stash   *StashInfo `json:"stash" yaml:"stash"`
}

// CommitGraph is the result of LoadCommits. Diagnostics lists the queries that
// failed and were treated as empty.
type CommitGraph struct {
	Nodes         []CommitNode `json:"nodes" yaml:"nodes"`
	Head          string       `json:"head" yaml:"head"`
	MoreAvailable bool         `json:"moreAvailable" yaml:"moreAvailable"`
	Diagnostics   []string     `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

type LoadOptions struct {
	Branch             string // empty loads every branch
	MaxCommits         int    // <= 0 uses the configured default
	ShowRemoteBranches bool
}

type ChangeType = gitbackend.ChangeKind

const (
	ChangeAdded    = gitbackend.ChangeAdded
	ChangeModified = gitbackend.ChangeModified
	ChangeDeleted  = gitbackend.ChangeDeleted
	ChangeRenamed  = gitbackend.ChangeRenamed
)

// FileChange is one entry of a comparison. Additions and Deletions are nil
// together when git could not count lines (binary or untracked files).
type FileChange struct {
	OldFilePath string     `json:"oldFilePath" yaml:"oldFilePath"`
	NewFilePath string     `json:"newFilePath" yaml:"newFilePath"`
	Type        ChangeType `json:"type" yaml:"type"`
	Additions   *int       `json:"additions" yaml:"additions"`
	Deletions   *int       `json:"deletions" yaml:"deletions"`
}

type CommitDetails struct {
	Hash         string       `json:"hash" yaml:"hash"`
	ParentHashes []string     `json:"parents" yaml:"parents"`
	Author       string       `json:"author" yaml:"author"`
	Email        string       `json:"email" yaml:"email"`
	Date         int64        `json:"date" yaml:"date"`
	Committer    string       `json:"committer" yaml:"committer"`
	Body         string       `json:"body" yaml:"body"`
	FileChanges  []FileChange `json:"fileChanges" yaml:"fileChanges"`
}

type BranchList struct {
	Branches []string `json:"branches" yaml:"branches"`
	Head     string   `json:"head" yaml:"head"`
}

// RepoStatus is the outcome of checking one known repository root.
type RepoStatus struct {
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

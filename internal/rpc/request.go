// Package rpc exposes the git service to a UI process as JSON lines on a
// pair of streams. Each request names one operation; the set of operations is
// closed and every request type is handled in Handle.
package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownCommand = errors.New("unknown command")

const (
	CommandLoadCommits   = "loadCommits"
	CommandCompare       = "compareCommits"
	CommandCommitDetails = "commitDetails"
	CommandFileContent   = "fileContent"
	CommandBranches      = "branches"
	CommandVerifyRepos   = "verifyRepos"
)

// Request is implemented only by the request types of this package.
type Request interface {
	Command() string
	isRequest()
}

type LoadCommitsRequest struct {
	Repo               string `json:"repo"`
	Branch             string `json:"branch"`
	MaxCommits         int    `json:"maxCommits"`
	ShowRemoteBranches bool   `json:"showRemoteBranches"`
}

type CompareRequest struct {
	Repo     string `json:"repo"`
	FromHash string `json:"fromHash"`
	ToHash   string `json:"toHash"`
}

type CommitDetailsRequest struct {
	Repo string `json:"repo"`
	Hash string `json:"commitHash"`
}

type FileContentRequest struct {
	Repo string `json:"repo"`
	Hash string `json:"commitHash"`
	Path string `json:"filePath"`
}

type BranchesRequest struct {
	Repo       string `json:"repo"`
	ShowRemote bool   `json:"showRemoteBranches"`
}

type VerifyReposRequest struct {
	Repos []string `json:"repos"`
}

func (LoadCommitsRequest) Command() string   { return CommandLoadCommits }
func (CompareRequest) Command() string       { return CommandCompare }
func (CommitDetailsRequest) Command() string { return CommandCommitDetails }
func (FileContentRequest) Command() string   { return CommandFileContent }
func (BranchesRequest) Command() string      { return CommandBranches }
func (VerifyReposRequest) Command() string   { return CommandVerifyRepos }

func (LoadCommitsRequest) isRequest()   {}
func (CompareRequest) isRequest()       {}
func (CommitDetailsRequest) isRequest() {}
func (FileContentRequest) isRequest()   {}
func (BranchesRequest) isRequest()      {}
func (VerifyReposRequest) isRequest()   {}

// envelope is one line on the wire in either direction.
type envelope struct {
	ID      json.RawMessage `json:"id,omitempty"`
	Command string          `json:"command"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Decode parses one request line. The returned id is echoed back in the
// response and may be nil.
func Decode(line []byte) (id json.RawMessage, req Request, err error) {
	var env envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return nil, nil, fmt.Errorf("decode request: %w", err)
	}
	switch env.Command {
	case CommandLoadCommits:
		req, err = decodeParams[LoadCommitsRequest](env.Params)
	case CommandCompare:
		req, err = decodeParams[CompareRequest](env.Params)
	case CommandCommitDetails:
		req, err = decodeParams[CommitDetailsRequest](env.Params)
	case CommandFileContent:
		req, err = decodeParams[FileContentRequest](env.Params)
	case CommandBranches:
		req, err = decodeParams[BranchesRequest](env.Params)
	case CommandVerifyRepos:
		req, err = decodeParams[VerifyReposRequest](env.Params)
	default:
		return env.ID, nil, fmt.Errorf("%w: %q", ErrUnknownCommand, env.Command)
	}
	if err != nil {
		return env.ID, nil, fmt.Errorf("decode %s params: %w", env.Command, err)
	}
	return env.ID, req, nil
}

func decodeParams[T Request](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	err := json.Unmarshal(raw, &v)
	return v, err
}

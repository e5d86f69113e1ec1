package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/thiagokokada/git-graph-go/internal/git"
)

// maxInFlight bounds how many requests run at once.
const maxInFlight = 4

// maxLineSize bounds one request line.
const maxLineSize = 4 << 20

// Backend is the part of git.Service the server calls.
type Backend interface {
	LoadCommits(ctx context.Context, repo string, opts git.LoadOptions) (git.CommitGraph, error)
	Compare(ctx context.Context, repo, from, to string) ([]git.FileChange, error)
	CommitDetails(ctx context.Context, repo, hash string) (*git.CommitDetails, error)
	FileContent(ctx context.Context, repo, hash, path string) (string, error)
	Branches(ctx context.Context, repo string, showRemote bool) (git.BranchList, error)
	VerifyRepos(ctx context.Context, roots []string) ([]git.RepoStatus, error)
}

// Handle runs req against b.
func Handle(ctx context.Context, b Backend, req Request) (any, error) {
	switch r := req.(type) {
	case LoadCommitsRequest:
		return b.LoadCommits(ctx, r.Repo, git.LoadOptions{
			Branch:             r.Branch,
			MaxCommits:         r.MaxCommits,
			ShowRemoteBranches: r.ShowRemoteBranches,
		})
	case CompareRequest:
		return b.Compare(ctx, r.Repo, r.FromHash, r.ToHash)
	case CommitDetailsRequest:
		return b.CommitDetails(ctx, r.Repo, r.Hash)
	case FileContentRequest:
		return b.FileContent(ctx, r.Repo, r.Hash, r.Path)
	case BranchesRequest:
		return b.Branches(ctx, r.Repo, r.ShowRemote)
	case VerifyReposRequest:
		return b.VerifyRepos(ctx, r.Repos)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCommand, req)
	}
}

// Serve reads one request per line from r and writes one response per line
// to w until r is exhausted or ctx is done. Requests run concurrently, so
// responses may come back out of order; clients match them by id.
func Serve(ctx context.Context, b Backend, r io.Reader, w io.Writer) error {
	out := &responseWriter{enc: json.NewEncoder(w)}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		if len(line) == 0 {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		id, req, err := Decode(line)
		if err != nil {
			slog.Debug("rpc decode failed", slog.Any("error", err))
			if werr := out.write(envelope{ID: id, Error: err.Error()}); werr != nil {
				return werr
			}
			continue
		}
		g.Go(func() error {
			trace := uuid.NewString()
			start := time.Now()
			slog.Debug("rpc request", slog.String("trace", trace), slog.String("command", req.Command()))
			result, err := Handle(gctx, b, req)
			resp := envelope{ID: id, Command: req.Command(), Result: result}
			if err != nil {
				resp.Result, resp.Error = nil, err.Error()
			}
			slog.Debug("rpc response",
				slog.String("trace", trace),
				slog.Duration("elapsed", time.Since(start)),
				slog.Bool("ok", err == nil),
			)
			return out.write(resp)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read requests: %w", err)
	}
	return ctx.Err()
}

type responseWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func (rw *responseWriter) write(resp envelope) error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if err := rw.enc.Encode(resp); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

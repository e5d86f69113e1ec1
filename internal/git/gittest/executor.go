// Package gittest provides a scripted backend.Executor for tests.
package gittest

import (
	"context"
	"os/exec"
	"slices"
	"strings"
	"sync"

	"github.com/thiagokokada/git-graph-go/internal/git/backend"
)

type Call struct {
	Dir  string
	Args []string
}

type response struct {
	tokens []string
	out    backend.Output
	hook   func()
}

// Executor answers each invocation with the first registered response whose
// tokens all appear in the argument list. Unmatched invocations fail.
type Executor struct {
	mu        sync.Mutex
	responses []response
	calls     []Call
}

func New() *Executor {
	return &Executor{}
}

func (e *Executor) On(out backend.Output, tokens ...string) *Executor {
	return e.OnHook(out, nil, tokens...)
}

// OnHook is On with a callback that runs while the invocation is in flight.
func (e *Executor) OnHook(out backend.Output, hook func(), tokens ...string) *Executor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.responses = append(e.responses, response{tokens: tokens, out: out, hook: hook})
	return e
}

func (e *Executor) Exec(_ context.Context, dir string, args []string) backend.Output {
	e.mu.Lock()
	e.calls = append(e.calls, Call{Dir: dir, Args: slices.Clone(args)})
	var matched *response
	for i := range e.responses {
		if containsAll(args, e.responses[i].tokens) {
			matched = &e.responses[i]
			break
		}
	}
	e.mu.Unlock()
	if matched == nil {
		return Fail(1, "gittest: unexpected command: git "+strings.Join(args, " "))
	}
	if matched.hook != nil {
		matched.hook()
	}
	return matched.out
}

func (e *Executor) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.calls)
}

// CallsTo counts invocations whose arguments contain every token.
func (e *Executor) CallsTo(tokens ...string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, c := range e.calls {
		if containsAll(c.Args, tokens) {
			n++
		}
	}
	return n
}

func containsAll(args, tokens []string) bool {
	for _, tok := range tokens {
		if !slices.Contains(args, tok) {
			return false
		}
	}
	return true
}

func OK(stdout string) backend.Output {
	return backend.Output{Stdout: stdout}
}

func Fail(code int, stderr string) backend.Output {
	return backend.Output{ExitCode: code, Stderr: stderr}
}

func SpawnError() backend.Output {
	return backend.Output{ExitCode: -1, Err: &exec.Error{Name: "git", Err: exec.ErrNotFound}}
}

package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Executor spawns the external tool. CLI is the production implementation.
type Executor interface {
	Exec(ctx context.Context, dir string, args []string) Output
}

// Output is the raw outcome of one invocation. Err is only set when the process
// could not be started; a process that ran and failed reports through ExitCode.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

type CLI struct {
	Path string
}

func (c CLI) Exec(ctx context.Context, dir string, args []string) Output {
	path := c.Path
	if path == "" {
		path = "git"
	}
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"GIT_OPTIONAL_LOCKS=0",
		"LC_ALL=C",
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return Output{ExitCode: -1, Err: err}
	}
	err := cmd.Wait()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			if out.ExitCode == 0 {
				out.ExitCode = -1
			}
			return out
		}
		out.ExitCode = -1
		out.Err = err
	}
	return out
}

// CommandError carries the diagnostic text of a failed invocation.
type CommandError struct {
	Args       []string
	Diagnostic string

	cause error
}

func (e *CommandError) Error() string {
	name := "git"
	if sub := subcommand(e.Args); sub != "" {
		name += " " + sub
	}
	if e.Diagnostic == "" {
		return name + ": failed"
	}
	return fmt.Sprintf("%s: %s", name, e.Diagnostic)
}

func (e *CommandError) Unwrap() error {
	return e.cause
}

// subcommand skips global options such as "-c key=value".
func subcommand(args []string) string {
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-c":
			i++
		case strings.HasPrefix(args[i], "-"):
		default:
			return args[i]
		}
	}
	return ""
}

// Result is the classified outcome of Run: either Value is meaningful
// (OK reports true) or Diagnostic is.
type Result[T any] struct {
	Args       []string
	Value      T
	Diagnostic string

	ok    bool
	cause error
}

func (r Result[T]) OK() bool {
	return r.ok
}

// Err returns nil on success and a *CommandError otherwise.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return &CommandError{Args: r.Args, Diagnostic: r.Diagnostic, cause: r.cause}
}

// ValueOr returns the value on success and fallback otherwise.
func (r Result[T]) ValueOr(fallback T) T {
	if r.ok {
		return r.Value
	}
	return fallback
}

// Invalid builds a failed result for input rejected before any process is spawned.
func Invalid[T any](args []string, err error) Result[T] {
	return Result[T]{Args: args, Diagnostic: err.Error(), cause: err}
}

// Run executes the tool in dir and hands stdout to transform on exit code 0.
func Run[T any](ctx context.Context, ex Executor, dir string, args []string, transform func(stdout string) T) Result[T] {
	if err := validateInvocation(dir, args); err != nil {
		return Invalid[T](args, err)
	}
	slog.Debug("git exec", slog.String("dir", dir), slog.Any("args", args))
	out := ex.Exec(ctx, dir, args)
	if out.Err != nil {
		slog.Debug("git spawn failed", slog.Any("args", args), slog.Any("error", out.Err))
		return Result[T]{Args: args, Diagnostic: out.Err.Error(), cause: out.Err}
	}
	if out.ExitCode != 0 {
		diag := Diagnostic(out)
		slog.Debug("git exited with error",
			slog.Any("args", args),
			slog.Int("exit_code", out.ExitCode),
			slog.String("diagnostic", diag),
		)
		return Result[T]{Args: args, Diagnostic: diag}
	}
	return Result[T]{Args: args, Value: transform(out.Stdout), ok: true}
}

// RunText is Run with the identity transform.
func RunText(ctx context.Context, ex Executor, dir string, args []string) Result[string] {
	return Run(ctx, ex, dir, args, func(stdout string) string { return stdout })
}

// Diagnostic derives the failure text of a non-zero exit: stderr, or stdout
// when stderr is empty, without trailing empty lines.
func Diagnostic(out Output) string {
	text := out.Stderr
	if strings.TrimSpace(text) == "" {
		text = out.Stdout
	}
	text = strings.TrimRight(text, "\r\n")
	if strings.TrimSpace(text) == "" {
		return fmt.Sprintf("exit status %d", out.ExitCode)
	}
	return text
}

func validateInvocation(dir string, args []string) error {
	if dir == "" {
		return fmt.Errorf("%w: repository path not set", ErrInvalidArgument)
	}
	if strings.ContainsRune(dir, 0) {
		return fmt.Errorf("%w: path contains null byte", ErrInvalidArgument)
	}
	for _, arg := range args {
		if strings.ContainsRune(arg, 0) {
			return fmt.Errorf("%w: argument contains null byte", ErrInvalidArgument)
		}
	}
	return nil
}

package git

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/thiagokokada/git-graph-go/internal/config"
	gitbackend "github.com/thiagokokada/git-graph-go/internal/git/backend"
)

// Service runs repository queries against the git CLI. It is safe for
// concurrent use; every request reads one settings snapshot from start to end.
type Service struct {
	settings    atomic.Pointer[settings]
	newExecutor func(gitPath string) gitbackend.Executor
	now         func() time.Time
}

type settings struct {
	cfg     config.Config
	exec    gitbackend.Executor
	formats gitbackend.Formats
}

func New(cfg config.Config) (*Service, error) {
	return newService(cfg, func(gitPath string) gitbackend.Executor {
		return gitbackend.CLI{Path: gitPath}
	})
}

// NewWithExecutor builds a Service that sends every invocation to ex.
func NewWithExecutor(cfg config.Config, ex gitbackend.Executor) (*Service, error) {
	return newService(cfg, func(string) gitbackend.Executor { return ex })
}

func newService(cfg config.Config, newExecutor func(string) gitbackend.Executor) (*Service, error) {
	s := &Service{newExecutor: newExecutor, now: time.Now}
	if err := s.Reconfigure(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Reconfigure validates cfg, derives the format strings and executor from it
// and swaps them in at once. Requests already running keep their snapshot.
func (s *Service) Reconfigure(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("reconfigure: %w", err)
	}
	dateType := gitbackend.DateAuthor
	if cfg.DateType == config.DateCommit {
		dateType = gitbackend.DateCommit
	}
	formats, err := gitbackend.NewFormats(dateType)
	if err != nil {
		return fmt.Errorf("reconfigure: %w", err)
	}
	s.settings.Store(&settings{
		cfg:     cfg,
		exec:    s.newExecutor(cfg.GitPath),
		formats: formats,
	})
	slog.Debug("git service configured",
		slog.String("git_path", cfg.GitPath),
		slog.String("date_type", dateType.String()),
		slog.Int("max_commits", cfg.MaxCommits),
	)
	return nil
}

func (s *Service) Config() config.Config {
	return s.settings.Load().cfg
}

// Version reports the git version and fails when it is older than MinGitVersion.
func (s *Service) Version(ctx context.Context) (string, error) {
	return gitbackend.CheckVersion(ctx, s.settings.Load().exec)
}

func MinGitVersion() string {
	return gitbackend.MinGitVersion()
}

// Package cmd implements the git-graph command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/thiagokokada/git-graph-go/internal/config"
	"github.com/thiagokokada/git-graph-go/internal/git"
	"github.com/thiagokokada/git-graph-go/internal/present"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type options struct {
	configPath string
	gitPath    string
	repo       string
	dateType   string
	output     string
	color      string
	theme      string
	verbose    bool
}

// app carries what every subcommand needs once the root flags are parsed.
type app struct {
	opts       options
	newService func(config.Config) (*git.Service, error)

	cfg     config.Config
	svc     *git.Service
	format  present.Format
	printer *present.Printer
	colored bool
}

// Run executes the command line in os.Args and stops cleanly on SIGINT or
// SIGTERM.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd(&app{newService: git.New}).ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "git-graph-go",
		Short: "Inspect the commit graph of a git repository",
		Long: `git-graph-go reads the history, refs, stashes and working tree state of a
git repository and prints the resulting commit graph, comparisons between
commits and file contents. The rpc command serves the same queries as
JSON lines for editor integrations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "config file (default is the user config dir)")
	flags.StringVar(&a.opts.gitPath, "git", "", "git executable to run")
	flags.StringVarP(&a.opts.repo, "repo", "C", ".", "path inside the repository")
	flags.StringVar(&a.opts.dateType, "date-type", "", "date shown for commits: author or commit")
	flags.StringVarP(&a.opts.output, "output", "o", string(present.FormatText), "output format: text, json or yaml")
	flags.StringVar(&a.opts.color, "color", colorAuto, "colorize output: auto, always or never")
	flags.StringVar(&a.opts.theme, "theme", "", "syntax highlighting theme: auto, light or dark")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(
		newLogCmd(a),
		newDiffCmd(a),
		newShowCmd(a),
		newDetailsCmd(a),
		newBranchesCmd(a),
		newCheckoutCmd(a),
		newResetCmd(a),
		newVerifyCmd(a),
		newRPCCmd(a),
		newVersionCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg

	format, err := present.ParseFormat(a.opts.output)
	if err != nil {
		return err
	}
	a.format = format

	switch a.opts.color {
	case colorAlways:
		a.colored = true
	case colorNever:
		a.colored = false
	case colorAuto:
		a.colored = isTerminal(cmd.OutOrStdout()) && os.Getenv("NO_COLOR") == ""
	default:
		return fmt.Errorf("invalid --color %q (want auto, always or never)", a.opts.color)
	}
	a.printer = present.NewPrinter(a.colored)

	svc, err := a.newService(cfg)
	if err != nil {
		return err
	}
	a.svc = svc
	return nil
}

// loadConfig reads the config file and applies the flags that were set
// explicitly. A missing default config file is not an error.
func (a *app) loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, optional := a.opts.configPath, false
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			slog.Debug("no user config dir", slog.Any("error", err))
			return a.applyFlags(cmd, config.Default())
		}
		path, optional = p, true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return config.Config{}, err
	}
	slog.Debug("config loaded", slog.String("path", path))
	return a.applyFlags(cmd, cfg)
}

func (a *app) applyFlags(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("git") {
		cfg.GitPath = a.opts.gitPath
	}
	if flags.Changed("date-type") {
		cfg.DateType = a.opts.dateType
	}
	if flags.Changed("theme") {
		cfg.Theme = a.opts.theme
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (a *app) repoRoot(ctx context.Context) (string, error) {
	return a.svc.RepoRoot(ctx, a.opts.repo)
}

func (a *app) dark() bool {
	return present.ThemePreferenceFromString(a.cfg.Theme).IsDark()
}

// emit prints v with text when the output format is text and encodes it
// otherwise.
func (a *app) emit(w io.Writer, v any, text func(io.Writer) error) error {
	if a.format == present.FormatText {
		return text(w)
	}
	return present.Encode(w, a.format, v)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

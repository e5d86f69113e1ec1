// Package watch reports repository changes that should trigger a reload of
// the commit graph.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDelay = 350 * time.Millisecond

type Watcher struct {
	fs       *fsnotify.Watcher
	debounce *debouncer
	paths    []string
}

// New watches the git directory of root (and its ref directories) and calls
// onChange once per burst of events, after delay has elapsed.
func New(root string, delay time.Duration, onChange func()) (*Watcher, error) {
	paths := watchPaths(root)
	if len(paths) == 0 {
		return nil, fmt.Errorf("nothing to watch under %q", root)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	for _, path := range paths {
		slog.Debug("adding path to FS watcher", slog.String("path", path))
		if err := fs.Add(path); err != nil {
			err := errors.Join(err, fs.Close())
			return nil, fmt.Errorf("watch %s: %w", path, err)
		}
	}
	return &Watcher{fs: fs, debounce: newDebouncer(delay, onChange), paths: paths}, nil
}

func (w *Watcher) Paths() []string {
	return slices.Clone(w.paths)
}

// Run dispatches events until ctx is done or the watcher is closed. It always
// closes the underlying watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if shouldIgnore(ev.Name) {
				continue
			}
			slog.Debug("fsnotify event",
				slog.String("op", ev.Op.String()),
				slog.String("path", ev.Name),
			)
			w.debounce.Trigger()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			slog.Error("fsnotify error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) Close() error {
	w.debounce.Stop()
	return w.fs.Close()
}

func watchPaths(root string) []string {
	if root == "" {
		return nil
	}
	gitDir := filepath.Join(root, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return []string{root}
	}
	paths := []string{root, gitDir}
	for _, sub := range []string{"refs/heads", "refs/tags", "refs/remotes"} {
		dir := filepath.Join(gitDir, filepath.FromSlash(sub))
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			paths = append(paths, dir)
		}
	}
	return paths
}

func shouldIgnore(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".lock", ".ipc":
		return true
	}
	return false
}

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchPaths(t *testing.T) {
	root := t.TempDir()
	assert.Equal(t, []string{root}, watchPaths(root))
	assert.Nil(t, watchPaths(""))

	gitDir := filepath.Join(root, ".git")
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "tags"), 0o755))
	assert.Equal(t, []string{
		root,
		gitDir,
		filepath.Join(gitDir, "refs", "heads"),
		filepath.Join(gitDir, "refs", "tags"),
	}, watchPaths(root))
}

func TestShouldIgnore(t *testing.T) {
	for name, want := range map[string]bool{
		"index.lock":     true,
		"HEAD.LOCK":      true,
		"fsmonitor.ipc":  true,
		"HEAD":           false,
		"refs/heads/dev": false,
	} {
		assert.Equal(t, want, shouldIgnore(name), name)
	}
}

func TestWatcher_Run(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git", "refs", "heads"), 0o755))

	changed := make(chan struct{}, 4)
	w, err := New(root, 20*time.Millisecond, func() { changed <- struct{}{} })
	require.NoError(t, err)
	assert.Len(t, w.Paths(), 3)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "refs", "heads", "main.lock"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "refs", "heads", "main"), []byte("abc\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "HEAD"), []byte("ref: refs/heads/main\n"), 0o644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

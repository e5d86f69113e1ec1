package present

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thiagokokada/git-graph-go/internal/git"
)

func plainPrinter() *Printer {
	p := NewPrinter(false)
	p.loc = time.UTC
	return p
}

func intPtr(v int) *int { return &v }

func TestWriteLog(t *testing.T) {
	t.Parallel()

	graph := git.CommitGraph{
		Head: "bbbbbbbbbbbb",
		Nodes: []git.CommitNode{
			{Hash: git.UncommittedHash, Parents: []string{"bbbbbbbbbbbb"}, Author: "*", Date: 0, Message: "Uncommitted Changes (2)"},
			{Hash: "5555555555", Parents: []string{"bbbbbbbbbbbb"}, Author: "Ann", Date: 60, Message: "WIP", Stash: &git.StashInfo{Selector: "stash@{0}"}},
			{Hash: "bbbbbbbbbbbb", Parents: []string{"aaaaaaaaaaaa"}, Author: "Ann", Date: 120, Message: "second", Refs: []git.RefLabel{
				{Name: "main", Kind: "head"},
				{Name: "origin/main", Kind: "remote"},
				{Name: "v1", Kind: "tag"},
			}},
			{Hash: "aaaaaaaaaaaa", Author: "Bob", Date: 0, Message: "first"},
		},
		MoreAvailable: true,
	}
	var out bytes.Buffer
	require.NoError(t, plainPrinter().WriteLog(&out, graph))
	assert.Equal(t, ""+
		"*   ******** 1970-01-01 00:00 * Uncommitted Changes (2)\n"+
		"* | 55555555 [stash@{0}] 1970-01-01 00:01 Ann WIP\n"+
		"*   bbbbbbbb (main, origin/main, tag: v1) 1970-01-01 00:02 Ann second\n"+
		"*   aaaaaaaa 1970-01-01 00:00 Bob first\n"+
		"(more commits available)\n", out.String())
}

func TestWriteLog_Colored(t *testing.T) {
	t.Parallel()

	p := NewPrinter(true)
	var out bytes.Buffer
	require.NoError(t, p.WriteLog(&out, git.CommitGraph{Nodes: []git.CommitNode{{Hash: "abcdef0123", Message: "m"}}}))
	assert.Contains(t, out.String(), "\x1b[")
}

func TestWriteLog_BranchesOnHeadShareStyle(t *testing.T) {
	t.Parallel()

	graph := git.CommitGraph{
		Head: "abcdef0123",
		Nodes: []git.CommitNode{{Hash: "abcdef0123", Message: "m", Refs: []git.RefLabel{
			{Name: "main", Kind: "head"},
			{Name: "feature", Kind: "head"},
		}}},
	}
	var out bytes.Buffer
	require.NoError(t, NewPrinter(true).WriteLog(&out, graph))
	assert.Contains(t, out.String(), "\x1b[32mmain")
	assert.Contains(t, out.String(), "\x1b[32mfeature")
	assert.NotContains(t, out.String(), "\x1b[32;1m")
}

func TestWriteChanges(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, plainPrinter().WriteChanges(&out, []git.FileChange{
		{OldFilePath: "a.go", NewFilePath: "a.go", Type: git.ChangeModified, Additions: intPtr(3), Deletions: intPtr(1)},
		{OldFilePath: "old.ts", NewFilePath: "new.ts", Type: git.ChangeRenamed, Additions: intPtr(0), Deletions: intPtr(0)},
		{OldFilePath: "logo.png", NewFilePath: "logo.png", Type: git.ChangeAdded},
	}))
	assert.Equal(t, ""+
		"M\ta.go\t+3 -1\n"+
		"R\told.ts -> new.ts\t+0 -0\n"+
		"A\tlogo.png\t(no line counts)\n", out.String())
}

func TestWriteDetails(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, plainPrinter().WriteDetails(&out, &git.CommitDetails{
		Hash:         "abcdef0123456789",
		ParentHashes: []string{"1111111111", "2222222222"},
		Author:       "Ann",
		Email:        "ann@example.com",
		Committer:    "Carl",
		Body:         "Subject\n\nBody",
	}))
	assert.Equal(t, ""+
		"commit abcdef0123456789\n"+
		"Merge:  11111111 22222222\n"+
		"Author: Ann <ann@example.com>\n"+
		"Commit: Carl\n"+
		"Date:   Thu Jan 1 00:00:00 1970 +0000\n"+
		"\n"+
		"    Subject\n"+
		"    \n"+
		"    Body\n"+
		"\n", out.String())
}

func TestWriteBranchesAndRepoStatus(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := plainPrinter()
	require.NoError(t, p.WriteBranches(&out, git.BranchList{Branches: []string{"dev", "main"}, Head: "main"}))
	require.NoError(t, p.WriteRepoStatus(&out, []git.RepoStatus{
		{Path: "/a", Exists: true},
		{Path: "/b"},
		{Path: "/c", Error: "permission denied"},
	}))
	assert.Equal(t, ""+
		"  dev\n"+
		"* main\n"+
		"ok      /a\n"+
		"missing /b\n"+
		"error   /c: permission denied\n", out.String())
}

func TestUnifiedFileDiff(t *testing.T) {
	t.Parallel()

	got, err := UnifiedFileDiff("a.txt", "a.txt", "one\ntwo\nthree\n", "one\n2\nthree\n")
	require.NoError(t, err)
	assert.Contains(t, got, "--- a/a.txt")
	assert.Contains(t, got, "+++ b/a.txt")
	assert.Contains(t, got, "-two\n")
	assert.Contains(t, got, "+2\n")

	added, err := UnifiedFileDiff("", "new.txt", "", "hello\n")
	require.NoError(t, err)
	assert.Contains(t, added, "--- /dev/null")
	assert.Contains(t, added, "+hello\n")

	same, err := UnifiedFileDiff("x", "x", "same\n", "same\n")
	require.NoError(t, err)
	assert.Empty(t, same)
}

func TestWriteDiff(t *testing.T) {
	t.Parallel()

	text := "--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new\n same\n"
	var plain bytes.Buffer
	require.NoError(t, plainPrinter().WriteDiff(&plain, text))
	assert.Equal(t, text, plain.String())

	var colored bytes.Buffer
	require.NoError(t, NewPrinter(true).WriteDiff(&colored, text))
	assert.Contains(t, colored.String(), "\x1b[32m+new")
	assert.Contains(t, colored.String(), "\x1b[31m-old")
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, Highlight(&out, "main.go", "package main\n\nfunc main() {}\n", true))
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "main")

	var unknown bytes.Buffer
	require.NoError(t, Highlight(&unknown, "notes.unknown-ext", "just text\n", false))
	assert.Contains(t, unknown.String(), "just text")
}

func TestEncode(t *testing.T) {
	t.Parallel()

	list := git.BranchList{Branches: []string{"main"}, Head: "main"}

	var j bytes.Buffer
	require.NoError(t, Encode(&j, FormatJSON, list))
	assert.JSONEq(t, `{"branches":["main"],"head":"main"}`, j.String())

	var y bytes.Buffer
	require.NoError(t, Encode(&y, FormatYAML, list))
	assert.Equal(t, "branches:\n  - main\nhead: main\n", y.String())

	assert.Error(t, Encode(&y, FormatText, list))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"text", "json", "yaml"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(f))
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

// Not parallel: swaps the package level detector.
func TestThemePreference(t *testing.T) {
	orig := detectDarkMode
	t.Cleanup(func() { detectDarkMode = orig })

	assert.Equal(t, ThemeDark, ThemePreferenceFromString(" DARK "))
	assert.Equal(t, ThemeLight, ThemePreferenceFromString("light"))
	assert.Equal(t, ThemeAuto, ThemePreferenceFromString("whatever"))
	assert.Equal(t, "auto", ThemeAuto.String())

	assert.True(t, ThemeDark.IsDark())
	assert.False(t, ThemeLight.IsDark())

	detectDarkMode = func() (bool, error) { return true, nil }
	assert.True(t, ThemeAuto.IsDark())
	detectDarkMode = func() (bool, error) { return true, errors.New("no desktop") }
	assert.False(t, ThemeAuto.IsDark())
	detectDarkMode = nil
	assert.False(t, ThemeAuto.IsDark())

	assert.NotNil(t, styleFor(true))
	assert.NotNil(t, styleFor(false))
}
